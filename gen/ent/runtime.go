// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/db/ent/schema"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/scanjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCompanyName is the schema descriptor for company_name field.
	applicationDescCompanyName := applicationFields[1].Descriptor()
	// application.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	application.CompanyNameValidator = applicationDescCompanyName.Validators[0].(func(string) error)
	// applicationDescJobTitle is the schema descriptor for job_title field.
	applicationDescJobTitle := applicationFields[2].Descriptor()
	// application.JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	application.JobTitleValidator = applicationDescJobTitle.Validators[0].(func(string) error)
	// applicationDescStatus is the schema descriptor for status field.
	applicationDescStatus := applicationFields[12].Descriptor()
	// application.DefaultStatus holds the default value on creation for the status field.
	application.DefaultStatus = applicationDescStatus.Default.(string)
	// application.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	application.StatusValidator = applicationDescStatus.Validators[0].(func(string) error)
	// applicationDescSource is the schema descriptor for source field.
	applicationDescSource := applicationFields[13].Descriptor()
	// application.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	application.SourceValidator = func() func(string) error {
		validators := applicationDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// applicationDescAddedAt is the schema descriptor for added_at field.
	applicationDescAddedAt := applicationFields[19].Descriptor()
	// application.DefaultAddedAt holds the default value on creation for the added_at field.
	application.DefaultAddedAt = applicationDescAddedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[20].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[1].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescStatus is the schema descriptor for status field.
	scanjobDescStatus := scanjobFields[3].Descriptor()
	// scanjob.DefaultStatus holds the default value on creation for the status field.
	scanjob.DefaultStatus = scanjobDescStatus.Default.(string)
	// scanjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	scanjob.StatusValidator = scanjobDescStatus.Validators[0].(func(string) error)
	// scanjobDescScanned is the schema descriptor for scanned field.
	scanjobDescScanned := scanjobFields[4].Descriptor()
	// scanjob.DefaultScanned holds the default value on creation for the scanned field.
	scanjob.DefaultScanned = scanjobDescScanned.Default.(int)
	// scanjobDescRelevant is the schema descriptor for relevant field.
	scanjobDescRelevant := scanjobFields[5].Descriptor()
	// scanjob.DefaultRelevant holds the default value on creation for the relevant field.
	scanjob.DefaultRelevant = scanjobDescRelevant.Default.(int)
	// scanjobDescCreated is the schema descriptor for created field.
	scanjobDescCreated := scanjobFields[6].Descriptor()
	// scanjob.DefaultCreated holds the default value on creation for the created field.
	scanjob.DefaultCreated = scanjobDescCreated.Default.(int)
	// scanjobDescUpdated is the schema descriptor for updated field.
	scanjobDescUpdated := scanjobFields[7].Descriptor()
	// scanjob.DefaultUpdated holds the default value on creation for the updated field.
	scanjob.DefaultUpdated = scanjobDescUpdated.Default.(int)
	// scanjobDescSkipped is the schema descriptor for skipped field.
	scanjobDescSkipped := scanjobFields[8].Descriptor()
	// scanjob.DefaultSkipped holds the default value on creation for the skipped field.
	scanjob.DefaultSkipped = scanjobDescSkipped.Default.(int)
	// scanjobDescFailed is the schema descriptor for failed field.
	scanjobDescFailed := scanjobFields[9].Descriptor()
	// scanjob.DefaultFailed holds the default value on creation for the failed field.
	scanjob.DefaultFailed = scanjobDescFailed.Default.(int)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
}
