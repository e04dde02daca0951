package dataset

// Role names the analytical meaning of a column independent of the header
// text a workbook happens to use. Uploaded files may carry the Korean
// originals or English headers; resolution is by ordered synonym list,
// first matching name wins.
type Role string

const (
	RoleClause      Role = "clause"
	RoleSubclause   Role = "subclause"
	RoleCategory    Role = "category"
	RoleContent     Role = "content"
	RoleRequirement Role = "requirement"
)

// findingRoles maps each role to its accepted column names for findings
// tables. Kept as data rather than scattered conditionals so adding a synonym
// is a one-line change.
var findingRoles = map[Role][]string{
	RoleClause:      {"clause", "Clause", "조항", "항목", "item"},
	RoleSubclause:   {"subclause", "Subclause", "세부조항"},
	RoleCategory:    {"category", "Category", "구분"},
	RoleContent:     {"content", "Content", "내용"},
	RoleRequirement: {"requirement", "Requirement", "요구사항"},
}

// Standards tables use their own synonym lists; note that "content"/"내용"
// names the requirement text there, not a finding description.
var (
	standardClauseNames      = []string{"조항", "Clause", "clause", "항목", "item"}
	standardRequirementNames = []string{"요구사항", "Requirement", "requirement", "내용", "content"}
)

// DisplayRoles is the fixed presentation column order; only columns actually
// present in a table are shown.
var DisplayRoles = []Role{RoleClause, RoleSubclause, RoleCategory, RoleRequirement, RoleContent}

// ResolveRole returns the column name that fills the given role in a findings
// table, or false when no accepted name is present.
func ResolveRole(t Table, role Role) (string, bool) {
	return resolveName(t, findingRoles[role])
}

// ResolveStandardClause returns the clause-identifier column of a standards
// table, or false when none of the accepted names is present.
func ResolveStandardClause(t Table) (string, bool) {
	return resolveName(t, standardClauseNames)
}

// ResolveStandardRequirement returns the requirement-text column of a
// standards table, or false when none of the accepted names is present.
func ResolveStandardRequirement(t Table) (string, bool) {
	return resolveName(t, standardRequirementNames)
}

func resolveName(t Table, names []string) (string, bool) {
	for _, n := range names {
		if t.HasColumn(n) {
			return n, true
		}
	}
	return "", false
}

// DisplayColumns resolves the display roles against a table and returns the
// matching column names in presentation order.
func DisplayColumns(t Table) []string {
	cols := make([]string, 0, len(DisplayRoles))
	for _, role := range DisplayRoles {
		if name, ok := ResolveRole(t, role); ok {
			cols = append(cols, name)
		}
	}
	return cols
}
