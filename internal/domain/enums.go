package domain

// ModuleID identifies one learning module of the curriculum.
type ModuleID string

const (
	ModuleIntro      ModuleID = "m1"
	ModuleTypes      ModuleID = "m2"
	ModuleSecurity   ModuleID = "m3"
	ModuleRegulation ModuleID = "m4"
)

// BadgeID identifies an achievement badge. Badge membership is boolean and
// only ever grows.
type BadgeID string

const (
	BadgeRookie   BadgeID = "b_rookie"
	BadgeExplorer BadgeID = "b_types"
	BadgeGuardian BadgeID = "b_guardian"
	BadgeRegulasi BadgeID = "b_reg"
	BadgeAntiScam BadgeID = "b_anti_scam"
)

// ValidModuleIDs is the canonical set of recognized module ids.
var ValidModuleIDs = map[ModuleID]bool{
	ModuleIntro: true, ModuleTypes: true, ModuleSecurity: true, ModuleRegulation: true,
}

// ValidBadgeIDs is the canonical set of recognized badge ids.
var ValidBadgeIDs = map[BadgeID]bool{
	BadgeRookie: true, BadgeExplorer: true, BadgeGuardian: true,
	BadgeRegulasi: true, BadgeAntiScam: true,
}

// ChecklistKeys is the fixed ordered set of security checklist entries.
// Keys are stable because stored documents reference them.
var ChecklistKeys = []string{
	"otpNeverShare",
	"mfaOn",
	"passwordManager",
	"updateDevice",
	"checkUrl",
	"reportScam",
}

// ValidChecklistKey reports whether key belongs to the fixed checklist.
func ValidChecklistKey(key string) bool {
	for _, k := range ChecklistKeys {
		if k == key {
			return true
		}
	}
	return false
}
