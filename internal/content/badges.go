package content

import "github.com/alexanderramin/fincerdas/internal/domain"

// Badges returns the canonical badge catalog in display order.
func Badges() []Badge {
	return []Badge{
		{ID: domain.BadgeRookie, Label: "Fintech Rookie", When: "Selesai Modul 1"},
		{ID: domain.BadgeExplorer, Label: "Fintech Explorer", When: "Selesai Modul 2"},
		{ID: domain.BadgeGuardian, Label: "Guardian Privasi", When: "Selesai Modul 3"},
		{ID: domain.BadgeRegulasi, Label: "Paham Regulasi", When: "Selesai Modul 4"},
		{ID: domain.BadgeAntiScam, Label: "Anti-Scam Hero", When: "Skor simulator ≥ 80"},
	}
}

// BadgeByID returns the catalog entry for id, or nil.
func BadgeByID(id domain.BadgeID) *Badge {
	for _, b := range Badges() {
		if b.ID == id {
			badge := b
			return &badge
		}
	}
	return nil
}

// moduleBadges maps each module to the badge granted on completion.
var moduleBadges = map[domain.ModuleID]domain.BadgeID{
	domain.ModuleIntro:      domain.BadgeRookie,
	domain.ModuleTypes:      domain.BadgeExplorer,
	domain.ModuleSecurity:   domain.BadgeGuardian,
	domain.ModuleRegulation: domain.BadgeRegulasi,
}

// BadgeForModule returns the badge granted when the given module is completed.
func BadgeForModule(id domain.ModuleID) (*Badge, bool) {
	bid, ok := moduleBadges[id]
	if !ok {
		return nil, false
	}
	return BadgeByID(bid), true
}
