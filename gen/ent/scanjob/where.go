// Code generated by ent, DO NOT EDIT.

package scanjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldID, id))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStatus, v))
}

// Scanned applies equality check predicate on the "scanned" field. It's identical to ScannedEQ.
func Scanned(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldScanned, v))
}

// Relevant applies equality check predicate on the "relevant" field. It's identical to RelevantEQ.
func Relevant(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldRelevant, v))
}

// Created applies equality check predicate on the "created" field. It's identical to CreatedEQ.
func Created(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldCreated, v))
}

// Updated applies equality check predicate on the "updated" field. It's identical to UpdatedEQ.
func Updated(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldUpdated, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldSkipped, v))
}

// Failed applies equality check predicate on the "failed" field. It's identical to FailedEQ.
func Failed(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFailed, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldStatus, v))
}

// ScannedEQ applies the EQ predicate on the "scanned" field.
func ScannedEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldScanned, v))
}

// ScannedNEQ applies the NEQ predicate on the "scanned" field.
func ScannedNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldScanned, v))
}

// ScannedIn applies the In predicate on the "scanned" field.
func ScannedIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldScanned, vs...))
}

// ScannedNotIn applies the NotIn predicate on the "scanned" field.
func ScannedNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldScanned, vs...))
}

// ScannedGT applies the GT predicate on the "scanned" field.
func ScannedGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldScanned, v))
}

// ScannedGTE applies the GTE predicate on the "scanned" field.
func ScannedGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldScanned, v))
}

// ScannedLT applies the LT predicate on the "scanned" field.
func ScannedLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldScanned, v))
}

// ScannedLTE applies the LTE predicate on the "scanned" field.
func ScannedLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldScanned, v))
}

// RelevantEQ applies the EQ predicate on the "relevant" field.
func RelevantEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldRelevant, v))
}

// RelevantNEQ applies the NEQ predicate on the "relevant" field.
func RelevantNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldRelevant, v))
}

// RelevantIn applies the In predicate on the "relevant" field.
func RelevantIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldRelevant, vs...))
}

// RelevantNotIn applies the NotIn predicate on the "relevant" field.
func RelevantNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldRelevant, vs...))
}

// RelevantGT applies the GT predicate on the "relevant" field.
func RelevantGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldRelevant, v))
}

// RelevantGTE applies the GTE predicate on the "relevant" field.
func RelevantGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldRelevant, v))
}

// RelevantLT applies the LT predicate on the "relevant" field.
func RelevantLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldRelevant, v))
}

// RelevantLTE applies the LTE predicate on the "relevant" field.
func RelevantLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldRelevant, v))
}

// CreatedEQ applies the EQ predicate on the "created" field.
func CreatedEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldCreated, v))
}

// CreatedNEQ applies the NEQ predicate on the "created" field.
func CreatedNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldCreated, v))
}

// CreatedIn applies the In predicate on the "created" field.
func CreatedIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldCreated, vs...))
}

// CreatedNotIn applies the NotIn predicate on the "created" field.
func CreatedNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldCreated, vs...))
}

// CreatedGT applies the GT predicate on the "created" field.
func CreatedGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldCreated, v))
}

// CreatedGTE applies the GTE predicate on the "created" field.
func CreatedGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldCreated, v))
}

// CreatedLT applies the LT predicate on the "created" field.
func CreatedLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldCreated, v))
}

// CreatedLTE applies the LTE predicate on the "created" field.
func CreatedLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldCreated, v))
}

// UpdatedEQ applies the EQ predicate on the "updated" field.
func UpdatedEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldUpdated, v))
}

// UpdatedNEQ applies the NEQ predicate on the "updated" field.
func UpdatedNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldUpdated, v))
}

// UpdatedIn applies the In predicate on the "updated" field.
func UpdatedIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldUpdated, vs...))
}

// UpdatedNotIn applies the NotIn predicate on the "updated" field.
func UpdatedNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldUpdated, vs...))
}

// UpdatedGT applies the GT predicate on the "updated" field.
func UpdatedGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldUpdated, v))
}

// UpdatedGTE applies the GTE predicate on the "updated" field.
func UpdatedGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldUpdated, v))
}

// UpdatedLT applies the LT predicate on the "updated" field.
func UpdatedLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldUpdated, v))
}

// UpdatedLTE applies the LTE predicate on the "updated" field.
func UpdatedLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldUpdated, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldSkipped, v))
}

// FailedEQ applies the EQ predicate on the "failed" field.
func FailedEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldFailed, v))
}

// FailedNEQ applies the NEQ predicate on the "failed" field.
func FailedNEQ(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldFailed, v))
}

// FailedIn applies the In predicate on the "failed" field.
func FailedIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldFailed, vs...))
}

// FailedNotIn applies the NotIn predicate on the "failed" field.
func FailedNotIn(vs ...int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldFailed, vs...))
}

// FailedGT applies the GT predicate on the "failed" field.
func FailedGT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldFailed, v))
}

// FailedGTE applies the GTE predicate on the "failed" field.
func FailedGTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldFailed, v))
}

// FailedLT applies the LT predicate on the "failed" field.
func FailedLT(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldFailed, v))
}

// FailedLTE applies the LTE predicate on the "failed" field.
func FailedLTE(v int) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldFailed, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScanJob {
	return predicate.ScanJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScanJob {
	return predicate.ScanJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScanJob) predicate.ScanJob {
	return predicate.ScanJob(sql.NotPredicates(p))
}
