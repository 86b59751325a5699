package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/db/ent/schema/utils"
)

type Application struct{ ent.Schema }

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "applications"},
	}
}

func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("company_name").NotEmpty(),
		field.String("job_title").NotEmpty(),
		field.String("location").Optional(),
		field.String("work_arrangement").Optional(),
		field.String("salary").Optional(),
		field.String("job_type").Optional(),
		field.String("seniority").Optional(),
		field.String("department").Optional(),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("skills", []string{}).Optional(),
		field.JSON("benefits", []string{}).Optional(),
		field.String("status").
			Default(string(constants.StatusApplied)).
			Validate(utils.EnumValidator(constants.Statuses()...)),
		field.String("source").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.SourceScreenshot),
				string(constants.SourceEmail),
			)),
		field.Float32("confidence").Optional().Nillable(),
		field.String("email_id").Optional().Nillable(),
		field.String("email_subject").Optional().Nillable(),
		field.String("email_from").Optional().Nillable(),
		field.Time("email_date").Optional().Nillable(),
		field.Time("added_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_name", "job_title"),
		index.Fields("status"),
		index.Fields("email_id"),
	}
}
