package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/db/ent/schema/utils"
)

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_job"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").
			Default(string(constants.ScanStatusQueued)).
			Validate(utils.EnumValidator(
				string(constants.ScanStatusQueued),
				string(constants.ScanStatusRunning),
				string(constants.ScanStatusOK),
				string(constants.ScanStatusFailed),
			)),
		field.Int("scanned").Default(0),
		field.Int("relevant").Default(0),
		field.Int("created").Default(0),
		field.Int("updated").Default(0),
		field.Int("skipped").Default(0),
		field.Int("failed").Default(0),
		field.String("error_message").Optional().Nillable(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
	}
}
