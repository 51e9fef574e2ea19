package app

// View names one screen of the application. Transitions happen only through
// the State operations or direct navigation; there is no automatic transition
// and no terminal state. HOME is always reachable.
type View string

const (
	ViewHome            View = "HOME"
	ViewSubCategoryList View = "SUB_CATEGORY_LIST"
	ViewYearList        View = "YEAR_LIST"
	ViewQuiz            View = "QUIZ"
	ViewAdmin           View = "ADMIN"
	ViewBookmarks       View = "BOOKMARKS"
)
