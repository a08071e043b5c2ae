// Package viewdef decodes YAML view definitions into view trees.
package viewdef

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ViewParser = (*Parser)(nil)

// localePrefix marks a text as a message key. "%%" escapes a literal '%'.
const localePrefix = "%"

// Parser implements ports.ViewParser.
type Parser struct {
	localizer ports.Localizer
}

// NewParser creates a Parser. A nil localizer leaves message keys unresolved.
func NewParser(localizer ports.Localizer) *Parser {
	return &Parser{localizer: localizer}
}

// Parse decodes the definition of res from r. The returned view's Digest is
// the xxhash of the source.
func (p *Parser) Parse(r io.Reader, res domain.Resource) (*domain.View, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, p.fail(res, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, p.fail(res, zerr.New("empty definition"))
		}
		return nil, p.fail(res, err)
	}

	if def.Root == nil {
		return nil, p.fail(res, zerr.New("missing root element"))
	}

	seen := make(map[string]struct{})
	root, err := p.buildNode(def.Root, seen)
	if err != nil {
		return nil, p.fail(res, err)
	}

	return &domain.View{
		ID:         res.ID,
		Title:      p.text(def.Title),
		Controller: domain.ControllerType(strings.TrimSpace(def.Controller)),
		Root:       root,
		Digest:     xxhash.Sum64(data),
	}, nil
}

func (p *Parser) buildNode(dto *NodeDTO, seen map[string]struct{}) (*domain.Node, error) {
	if dto.Type == "" {
		return nil, zerr.With(zerr.New("element without type"), "id", dto.ID)
	}

	if dto.ID != "" {
		if _, dup := seen[dto.ID]; dup {
			return nil, zerr.With(zerr.New("duplicate element id"), "id", dto.ID)
		}
		seen[dto.ID] = struct{}{}
	}

	node := &domain.Node{
		Kind:  dto.Type,
		ID:    dto.ID,
		Text:  p.text(dto.Text),
		Props: dto.Props,
	}

	for _, child := range dto.Children {
		if child == nil {
			continue
		}
		built, err := p.buildNode(child, seen)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, built)
	}

	return node, nil
}

// text resolves "%key" through the localizer.
func (p *Parser) text(s string) string {
	if !strings.HasPrefix(s, localePrefix) {
		return s
	}
	if strings.HasPrefix(s, localePrefix+localePrefix) {
		return s[len(localePrefix):]
	}

	key := s[len(localePrefix):]
	if p.localizer == nil {
		return key
	}
	return p.localizer.Localize(key)
}

func (p *Parser) fail(res domain.Resource, cause error) error {
	return zerr.With(errors.Join(domain.ErrViewParseFailed, cause), "path", res.Path)
}
