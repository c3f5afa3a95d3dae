package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

func TestCheckDocument(t *testing.T) {
	t.Run("Should accept a clean document", func(t *testing.T) {
		doc := entities.Document{
			Strategy: entities.Strategy{
				Points:         []string{"a", "b"},
				PointPositions: []valueobjects.Position{valueobjects.At(1, 2), valueobjects.At(3, 4)},
			},
			Timeline: []entities.Milestone{
				{ID: "m1", Phase: valueobjects.PhaseEducation, LogoURL: "/uploads/a.png", Color: "rose",
					Children: []entities.Milestone{{ID: "c1"}}},
			},
		}

		assert.Empty(t, CheckDocument(doc, func(string) bool { return true }))
	})

	t.Run("Should report every problem without stopping", func(t *testing.T) {
		doc := entities.Document{
			Strategy: entities.Strategy{
				Points:         []string{"a", "b", "c"},
				PointPositions: []valueobjects.Position{valueobjects.At(1, 2)},
			},
			Timeline: []entities.Milestone{
				{ID: "m1", Phase: "postdoc", LogoURL: "/uploads/gone.png"},
				{ID: "m1", Color: "plaid", Children: []entities.Milestone{
					{ID: "", Phase: valueobjects.PhaseGrowth},
					{ID: "c2", Children: []entities.Milestone{
						{ID: "m1", Phase: "postdoc", LogoURL: "/uploads/gone.png"},
					}},
				}},
			},
		}

		var got []string
		for _, f := range CheckDocument(doc, func(url string) bool { return url != "/uploads/gone.png" }) {
			got = append(got, f.String())
		}

		assert.ElementsMatch(t, []string{
			"strategy.pointPositions: 1 positions for 3 points; the default layout will be used",
			`timeline[0]: unknown phase "postdoc"`,
			"timeline[0]: logo /uploads/gone.png not found",
			`timeline[1]: id "m1" already used by timeline[0]`,
			"timeline[1]: phase is missing; the fallback colour will be used",
			`timeline[1]: unknown colour "plaid"`,
			"timeline[1].children[0]: milestone has no id",
			"timeline[1].children[1]: children of a child milestone are ignored",
		}, got, "the ignored grandchild is not checked")
	})

	t.Run("Should skip logo checks without a resolver", func(t *testing.T) {
		doc := entities.Document{Timeline: []entities.Milestone{
			{ID: "m1", Phase: valueobjects.PhaseCurrent, LogoURL: "/uploads/x.png"},
		}}
		assert.Empty(t, CheckDocument(doc, nil))
	})
}
