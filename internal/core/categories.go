package core

// Category vocabularies are fixed per transaction type. Both validation
// and presentation consult CategoriesFor so the coupling between type
// and category lives in exactly one place.
var (
	incomeCategories  = []string{"Salary", "Freelance", "Business", "Investment", "Other"}
	expenseCategories = []string{"Food", "Transport", "Entertainment", "Bills", "Shopping", "Health", "Other"}
)

// CategoriesFor returns the category vocabulary for the given type. The
// returned slice is a copy; callers may reorder it freely.
func CategoriesFor(t TransactionType) []string {
	var src []string
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AllCategories returns the union of both vocabularies, for filter
// dropdowns that span types. "Other" appears once.
func AllCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range []TransactionType{Income, Expense} {
		for _, c := range CategoriesFor(t) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// CategoryValid reports whether category belongs to the vocabulary of t.
func CategoryValid(t TransactionType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}
