package tree_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/desk/internal/core/domain"
	"go.trai.ch/desk/internal/ui/tree"
)

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name       string
		view       *domain.View
		goldenName string
	}{
		{
			name: "nested with controller",
			view: &domain.View{
				ID:         domain.NewViewID("trade/offer"),
				Title:      "Create offer",
				Controller: "trade.offer",
				Root: &domain.Node{Kind: "page", ID: "offer", Children: []*domain.Node{
					{Kind: "form", ID: "offer-form", Children: []*domain.Node{
						{Kind: "input", ID: "amount", Text: "Amount", Props: map[string]string{"unit": "BTC", "placeholder": "0.00000000"}},
						{Kind: "label", ID: "amount-error", Props: map[string]string{"role": "error"}},
						{Kind: "button", ID: "submit", Text: "Place offer", Props: map[string]string{"enabled": "false"}},
					}},
					{Kind: "label", ID: "footer"},
				}},
			},
			goldenName: "tree_offer",
		},
		{
			name:       "untitled without root",
			view:       &domain.View{ID: domain.NewViewID("blank")},
			goldenName: "tree_blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			require.NoError(t, tree.NewRenderer(buf).Render(tt.view))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
