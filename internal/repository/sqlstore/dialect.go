package sqlstore

import "fmt"

// Dialect selects the SQL variant spoken by the store.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

// ParseDialect maps a configured driver name to a Dialect. An empty name means MySQL.
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case MySQL, "":
		return MySQL, nil
	case Postgres:
		return Postgres, nil
	}
	return "", fmt.Errorf("unsupported dialect %q", driver)
}

// joinedDepartments aggregates the department names of a document into one
// comma-separated column.
func (d Dialect) joinedDepartments() string {
	if d == Postgres {
		return "string_agg(dept.name, ',' ORDER BY dept.name)"
	}
	return "GROUP_CONCAT(dept.name ORDER BY dept.name SEPARATOR ',')"
}

func (d Dialect) documentsQuery() string {
	return `
		SELECT d.doc_id, d.title, d.reference, d.status, d.visible_to_all,
		       d.created_at, d.updated_at, d.created_by_name, d.deleted,
		       dt.name AS doc_type, ` + d.joinedDepartments() + ` AS departments
		FROM dms_documents d
		LEFT JOIN document_types dt ON d.doc_type = dt.type_id
		LEFT JOIN document_departments dd ON d.doc_id = dd.doc_id
		LEFT JOIN departments dept ON dd.department_id = dept.department_id
		GROUP BY d.doc_id, dt.name
		ORDER BY d.doc_id
	`
}
