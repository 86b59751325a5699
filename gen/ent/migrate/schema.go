// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString},
		{Name: "job_title", Type: field.TypeString},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "work_arrangement", Type: field.TypeString, Nullable: true},
		{Name: "salary", Type: field.TypeString, Nullable: true},
		{Name: "job_type", Type: field.TypeString, Nullable: true},
		{Name: "seniority", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "benefits", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "applied"},
		{Name: "source", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "email_id", Type: field.TypeString, Nullable: true},
		{Name: "email_subject", Type: field.TypeString, Nullable: true},
		{Name: "email_from", Type: field.TypeString, Nullable: true},
		{Name: "email_date", Type: field.TypeTime, Nullable: true},
		{Name: "added_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ApplicationsTable holds the schema information for the "applications" table.
	ApplicationsTable = &schema.Table{
		Name:       "applications",
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "application_company_name_job_title",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[1], ApplicationsColumns[2]},
			},
			{
				Name:    "application_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[12]},
			},
			{
				Name:    "application_email_id",
				Unique:  false,
				Columns: []*schema.Column{ApplicationsColumns[15]},
			},
		},
	}
	// ScanJobColumns holds the columns for the "scan_job" table.
	ScanJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "scanned", Type: field.TypeInt, Default: 0},
		{Name: "relevant", Type: field.TypeInt, Default: 0},
		{Name: "created", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ScanJobTable holds the schema information for the "scan_job" table.
	ScanJobTable = &schema.Table{
		Name:       "scan_job",
		Columns:    ScanJobColumns,
		PrimaryKey: []*schema.Column{ScanJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobColumns[3], ScanJobColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationsTable,
		ScanJobTable,
	}
)

func init() {
	ApplicationsTable.Annotation = &entsql.Annotation{
		Table: "applications",
	}
	ScanJobTable.Annotation = &entsql.Annotation{
		Table: "scan_job",
	}
}
