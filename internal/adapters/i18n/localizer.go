// Package i18n implements ports.Localizer on top of golang.org/x/text.
package i18n

import (
	"io/fs"
	"path"
	"strings"

	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const bundleExt = ".yaml"

// Fallback is the language used for keys missing from the selected bundle.
var Fallback = language.English

// Localizer implements ports.Localizer with a message catalog built from
// YAML bundles named after their BCP 47 tag (en.yaml, de.yaml).
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
	keys    map[string]struct{}
}

// New loads every bundle in bundles and selects the one best matching locale.
func New(bundles fs.FS, locale string) (*Localizer, error) {
	files, err := fs.Glob(bundles, "*"+bundleExt)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrBundleLoadFailed, err.Error())
	}

	bundlesByTag := make(map[language.Tag]map[string]string, len(files))
	tags := []language.Tag{Fallback}
	for _, file := range files {
		tag, messages, err := readBundle(bundles, file)
		if err != nil {
			return nil, err
		}
		bundlesByTag[tag] = messages
		if tag != Fallback {
			tags = append(tags, tag)
		}
	}

	tag := matchTag(tags, locale)

	// Catalog lookups only walk parent tags, so fallback messages are copied
	// into the selected bundle.
	messages := make(map[string]string, len(bundlesByTag[Fallback]))
	for _, t := range []language.Tag{Fallback, tag} {
		for key, msg := range bundlesByTag[t] {
			messages[key] = msg
		}
	}

	builder := catalog.NewBuilder(catalog.Fallback(Fallback))
	keys := make(map[string]struct{}, len(messages))
	for key, msg := range messages {
		if err := builder.SetString(tag, key, msg); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrBundleLoadFailed, err.Error()), "key", key)
		}
		keys[key] = struct{}{}
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
		keys:    keys,
	}, nil
}

func readBundle(bundles fs.FS, file string) (language.Tag, map[string]string, error) {
	name := strings.TrimSuffix(path.Base(file), path.Ext(file))
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, nil, zerr.With(zerr.Wrap(domain.ErrBundleLoadFailed, err.Error()), "bundle", file)
	}

	data, err := fs.ReadFile(bundles, file)
	if err != nil {
		return language.Und, nil, zerr.With(zerr.Wrap(domain.ErrBundleLoadFailed, err.Error()), "bundle", file)
	}

	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return language.Und, nil, zerr.With(zerr.Wrap(domain.ErrBundleLoadFailed, err.Error()), "bundle", file)
	}

	return tag, messages, nil
}

// matchTag picks the supported tag closest to locale. tags[0] is the default.
func matchTag(tags []language.Tag, locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return tags[0]
	}
	_, idx, _ := language.NewMatcher(tags).Match(requested)
	return tags[idx]
}

// Localize returns the message for key formatted with args.
// Unknown keys are returned unchanged.
func (l *Localizer) Localize(key string, args ...any) string {
	if !l.Has(key) {
		return key
	}
	return l.printer.Sprintf(key, args...)
}

// Has reports whether a message exists for key.
func (l *Localizer) Has(key string) bool {
	_, ok := l.keys[key]
	return ok
}

// Locale returns the tag of the selected bundle.
func (l *Localizer) Locale() string {
	return l.tag.String()
}
