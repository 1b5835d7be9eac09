package content

import (
	"testing"

	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModules_EveryQuestionHasExactlyOneCorrectAnswer(t *testing.T) {
	for _, m := range Modules() {
		require.NotEmpty(t, m.Quiz, "module %s has no quiz", m.ID)
		for qi, q := range m.Quiz {
			correct := 0
			for _, a := range q.Answers {
				if a.Correct {
					correct++
				}
			}
			assert.Equal(t, 1, correct, "module %s question %d", m.ID, qi)
		}
	}
}

func TestModules_IDsAreValidAndUnique(t *testing.T) {
	seen := map[domain.ModuleID]bool{}
	for _, m := range Modules() {
		assert.True(t, domain.ValidModuleIDs[m.ID], "module id %s not registered", m.ID)
		assert.False(t, seen[m.ID], "duplicate module id %s", m.ID)
		seen[m.ID] = true
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Article)
	}
	assert.Len(t, seen, len(domain.ValidModuleIDs))
}

func TestModuleByID(t *testing.T) {
	m := ModuleByID(domain.ModuleTypes)
	require.NotNil(t, m)
	assert.Equal(t, "Jenis-jenis Fintech & Contohnya", m.Title)

	assert.Nil(t, ModuleByID("m99"))
}

func TestBadges_CatalogCoversAllIDs(t *testing.T) {
	seen := map[domain.BadgeID]bool{}
	for _, b := range Badges() {
		assert.True(t, domain.ValidBadgeIDs[b.ID])
		seen[b.ID] = true
	}
	assert.Len(t, seen, len(domain.ValidBadgeIDs))
}

func TestBadgeForModule_EveryModuleHasABadge(t *testing.T) {
	for _, m := range Modules() {
		b, ok := BadgeForModule(m.ID)
		require.True(t, ok, "module %s has no badge", m.ID)
		assert.NotEmpty(t, b.Label)
	}
	_, ok := BadgeForModule("m99")
	assert.False(t, ok)
}

func TestFraudScenarios_EachHasExactlyOneSafeChoice(t *testing.T) {
	scenarios := FraudScenarios()
	require.NotEmpty(t, scenarios)
	for si, s := range scenarios {
		safe := 0
		for _, c := range s.Choices {
			assert.NotEmpty(t, c.Tip, "scenario %d choice without feedback", si)
			if c.Safe {
				safe++
			}
		}
		assert.Equal(t, 1, safe, "scenario %d", si)
	}
}

func TestChecklistItems_KeysAreRecognized(t *testing.T) {
	for _, item := range ChecklistItems() {
		assert.True(t, domain.ValidChecklistKey(item.Key), "unknown key %s", item.Key)
	}
}
