package models

import (
	"fmt"
	"io"
	"sort"

	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Column Mismatch Report Usage:

The report lists database columns that no field of the corresponding Go model maps to.
Run it with:

	studio-cms column-report

Example output:

	=== COLUMN MISMATCH REPORT ===
	--- Table: blog_posts ---
	Found 1 columns not accounted for in model:
	  - legacy_author

	--- Table: projects ---
	All columns are accounted for in the model.

	=== SUMMARY ===
	Total mismatched columns across all tables: 1
*/

// All returns one zero value of every persisted model, in migration order.
func All() []any {
	return []any{
		&AdminUser{},
		&BlogPost{},
		&Project{},
		&Service{},
		&Testimonial{},
		&TeamMember{},
		&ContactMessage{},
		&MediaAsset{},
		&SiteSettings{},
	}
}

// Migrate creates or alters every table so it matches the models.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto-migrating models: %w", err)
	}
	return nil
}

// GenerateQueries writes typed gorm/gen query helpers for every model into outPath.
func GenerateQueries(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("checking database connection: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)
	g.Execute()
	return nil
}

// TableMismatch lists the columns of one table that no model field maps to.
type TableMismatch struct {
	Table   string
	Missing bool
	Columns []string
}

// FindColumnMismatches compares live table columns against the model schemas.
// Tables that do not exist yet are reported with Missing set.
func FindColumnMismatches(db *gorm.DB) ([]TableMismatch, error) {
	var report []TableMismatch
	migrator := db.Migrator()

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}
		entry := TableMismatch{Table: stmt.Schema.Table}

		if !migrator.HasTable(model) {
			entry.Missing = true
			report = append(report, entry)
			continue
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", entry.Table, err)
		}

		known := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			known[name] = true
		}
		for _, col := range columnTypes {
			if !known[col.Name()] {
				entry.Columns = append(entry.Columns, col.Name())
			}
		}
		sort.Strings(entry.Columns)
		report = append(report, entry)
	}

	return report, nil
}

// WriteColumnMismatchReport renders FindColumnMismatches in a human readable form.
func WriteColumnMismatchReport(w io.Writer, db *gorm.DB) error {
	report, err := FindColumnMismatches(db)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")
	total := 0
	for _, entry := range report {
		fmt.Fprintf(w, "--- Table: %s ---\n", entry.Table)
		switch {
		case entry.Missing:
			fmt.Fprintln(w, "Table does not exist yet (will be created during migration)")
		case len(entry.Columns) == 0:
			fmt.Fprintln(w, "All columns are accounted for in the model.")
		default:
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(entry.Columns))
			for _, col := range entry.Columns {
				fmt.Fprintf(w, "  - %s\n", col)
			}
			total += len(entry.Columns)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "=== SUMMARY ===")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", total)
	return nil
}
