package cli

import (
	"github.com/alexanderramin/fincerdas/internal/content"
	"github.com/alexanderramin/fincerdas/internal/domain"
	"github.com/alexanderramin/fincerdas/internal/router"
)

// viewForRoute maps a parsed address to its view. Unknown pages and missing
// resources land on the not-found view; the caller never needs a second
// existence check.
func viewForRoute(state *SharedState, route router.Route) View {
	switch route.Page {
	case router.PageHome:
		return newHomeView(state)
	case router.PageLearn:
		return newLearnView(state)
	case router.PageModule:
		mod := content.ModuleByID(domain.ModuleID(route.ResourceID))
		if mod == nil {
			return newNotFoundView(state, route)
		}
		return newModuleView(state, mod, route.Query["tab"])
	case router.PageQuiz:
		return newQuizHubView(state)
	case router.PageSims:
		return newSimsView(state)
	case router.PagePlanner:
		return newPlannerView(state)
	case router.PageSecurity:
		return newSecurityView(state)
	case router.PageAbout:
		return newAboutView(state)
	default:
		return newNotFoundView(state, route)
	}
}
