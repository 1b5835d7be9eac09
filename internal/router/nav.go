package router

// NavEntry is one top-level navigation item.
type NavEntry struct {
	Page  Page
	Label string
}

// NavEntries lists the navigation bar in display order. The module detail
// page has no entry of its own; Route.NavPage folds it into the learning
// section.
func NavEntries() []NavEntry {
	return []NavEntry{
		{PageHome, "Beranda"},
		{PageLearn, "Belajar"},
		{PageQuiz, "Kuis"},
		{PageSims, "Simulasi"},
		{PagePlanner, "Planner"},
		{PageSecurity, "Keamanan"},
		{PageAbout, "Tentang"},
	}
}
