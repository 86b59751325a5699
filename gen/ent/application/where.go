// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCompanyName, v))
}

// JobTitle applies equality check predicate on the "job_title" field. It's identical to JobTitleEQ.
func JobTitle(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobTitle, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldLocation, v))
}

// WorkArrangement applies equality check predicate on the "work_arrangement" field. It's identical to WorkArrangementEQ.
func WorkArrangement(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWorkArrangement, v))
}

// Salary applies equality check predicate on the "salary" field. It's identical to SalaryEQ.
func Salary(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSalary, v))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobType, v))
}

// Seniority applies equality check predicate on the "seniority" field. It's identical to SeniorityEQ.
func Seniority(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSeniority, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDepartment, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDescription, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSource, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldConfidence, v))
}

// EmailID applies equality check predicate on the "email_id" field. It's identical to EmailIDEQ.
func EmailID(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailID, v))
}

// EmailSubject applies equality check predicate on the "email_subject" field. It's identical to EmailSubjectEQ.
func EmailSubject(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailFrom applies equality check predicate on the "email_from" field. It's identical to EmailFromEQ.
func EmailFrom(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailFrom, v))
}

// EmailDate applies equality check predicate on the "email_date" field. It's identical to EmailDateEQ.
func EmailDate(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailDate, v))
}

// AddedAt applies equality check predicate on the "added_at" field. It's identical to AddedAtEQ.
func AddedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAddedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldCompanyName, v))
}

// JobTitleEQ applies the EQ predicate on the "job_title" field.
func JobTitleEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobTitle, v))
}

// JobTitleNEQ applies the NEQ predicate on the "job_title" field.
func JobTitleNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldJobTitle, v))
}

// JobTitleIn applies the In predicate on the "job_title" field.
func JobTitleIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldJobTitle, vs...))
}

// JobTitleNotIn applies the NotIn predicate on the "job_title" field.
func JobTitleNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldJobTitle, vs...))
}

// JobTitleGT applies the GT predicate on the "job_title" field.
func JobTitleGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldJobTitle, v))
}

// JobTitleGTE applies the GTE predicate on the "job_title" field.
func JobTitleGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldJobTitle, v))
}

// JobTitleLT applies the LT predicate on the "job_title" field.
func JobTitleLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldJobTitle, v))
}

// JobTitleLTE applies the LTE predicate on the "job_title" field.
func JobTitleLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldJobTitle, v))
}

// JobTitleContains applies the Contains predicate on the "job_title" field.
func JobTitleContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldJobTitle, v))
}

// JobTitleHasPrefix applies the HasPrefix predicate on the "job_title" field.
func JobTitleHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldJobTitle, v))
}

// JobTitleHasSuffix applies the HasSuffix predicate on the "job_title" field.
func JobTitleHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldJobTitle, v))
}

// JobTitleEqualFold applies the EqualFold predicate on the "job_title" field.
func JobTitleEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldJobTitle, v))
}

// JobTitleContainsFold applies the ContainsFold predicate on the "job_title" field.
func JobTitleContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldJobTitle, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldLocation, v))
}

// WorkArrangementEQ applies the EQ predicate on the "work_arrangement" field.
func WorkArrangementEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWorkArrangement, v))
}

// WorkArrangementNEQ applies the NEQ predicate on the "work_arrangement" field.
func WorkArrangementNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldWorkArrangement, v))
}

// WorkArrangementIn applies the In predicate on the "work_arrangement" field.
func WorkArrangementIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldWorkArrangement, vs...))
}

// WorkArrangementNotIn applies the NotIn predicate on the "work_arrangement" field.
func WorkArrangementNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldWorkArrangement, vs...))
}

// WorkArrangementGT applies the GT predicate on the "work_arrangement" field.
func WorkArrangementGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldWorkArrangement, v))
}

// WorkArrangementGTE applies the GTE predicate on the "work_arrangement" field.
func WorkArrangementGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldWorkArrangement, v))
}

// WorkArrangementLT applies the LT predicate on the "work_arrangement" field.
func WorkArrangementLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldWorkArrangement, v))
}

// WorkArrangementLTE applies the LTE predicate on the "work_arrangement" field.
func WorkArrangementLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldWorkArrangement, v))
}

// WorkArrangementContains applies the Contains predicate on the "work_arrangement" field.
func WorkArrangementContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldWorkArrangement, v))
}

// WorkArrangementHasPrefix applies the HasPrefix predicate on the "work_arrangement" field.
func WorkArrangementHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldWorkArrangement, v))
}

// WorkArrangementHasSuffix applies the HasSuffix predicate on the "work_arrangement" field.
func WorkArrangementHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldWorkArrangement, v))
}

// WorkArrangementIsNil applies the IsNil predicate on the "work_arrangement" field.
func WorkArrangementIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldWorkArrangement))
}

// WorkArrangementNotNil applies the NotNil predicate on the "work_arrangement" field.
func WorkArrangementNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldWorkArrangement))
}

// WorkArrangementEqualFold applies the EqualFold predicate on the "work_arrangement" field.
func WorkArrangementEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldWorkArrangement, v))
}

// WorkArrangementContainsFold applies the ContainsFold predicate on the "work_arrangement" field.
func WorkArrangementContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldWorkArrangement, v))
}

// SalaryEQ applies the EQ predicate on the "salary" field.
func SalaryEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSalary, v))
}

// SalaryNEQ applies the NEQ predicate on the "salary" field.
func SalaryNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSalary, v))
}

// SalaryIn applies the In predicate on the "salary" field.
func SalaryIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSalary, vs...))
}

// SalaryNotIn applies the NotIn predicate on the "salary" field.
func SalaryNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSalary, vs...))
}

// SalaryGT applies the GT predicate on the "salary" field.
func SalaryGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSalary, v))
}

// SalaryGTE applies the GTE predicate on the "salary" field.
func SalaryGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSalary, v))
}

// SalaryLT applies the LT predicate on the "salary" field.
func SalaryLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSalary, v))
}

// SalaryLTE applies the LTE predicate on the "salary" field.
func SalaryLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSalary, v))
}

// SalaryContains applies the Contains predicate on the "salary" field.
func SalaryContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSalary, v))
}

// SalaryHasPrefix applies the HasPrefix predicate on the "salary" field.
func SalaryHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSalary, v))
}

// SalaryHasSuffix applies the HasSuffix predicate on the "salary" field.
func SalaryHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSalary, v))
}

// SalaryIsNil applies the IsNil predicate on the "salary" field.
func SalaryIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSalary))
}

// SalaryNotNil applies the NotNil predicate on the "salary" field.
func SalaryNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSalary))
}

// SalaryEqualFold applies the EqualFold predicate on the "salary" field.
func SalaryEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSalary, v))
}

// SalaryContainsFold applies the ContainsFold predicate on the "salary" field.
func SalaryContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSalary, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeIsNil applies the IsNil predicate on the "job_type" field.
func JobTypeIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldJobType))
}

// JobTypeNotNil applies the NotNil predicate on the "job_type" field.
func JobTypeNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldJobType))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldJobType, v))
}

// SeniorityEQ applies the EQ predicate on the "seniority" field.
func SeniorityEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSeniority, v))
}

// SeniorityNEQ applies the NEQ predicate on the "seniority" field.
func SeniorityNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSeniority, v))
}

// SeniorityIn applies the In predicate on the "seniority" field.
func SeniorityIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSeniority, vs...))
}

// SeniorityNotIn applies the NotIn predicate on the "seniority" field.
func SeniorityNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSeniority, vs...))
}

// SeniorityGT applies the GT predicate on the "seniority" field.
func SeniorityGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSeniority, v))
}

// SeniorityGTE applies the GTE predicate on the "seniority" field.
func SeniorityGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSeniority, v))
}

// SeniorityLT applies the LT predicate on the "seniority" field.
func SeniorityLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSeniority, v))
}

// SeniorityLTE applies the LTE predicate on the "seniority" field.
func SeniorityLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSeniority, v))
}

// SeniorityContains applies the Contains predicate on the "seniority" field.
func SeniorityContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSeniority, v))
}

// SeniorityHasPrefix applies the HasPrefix predicate on the "seniority" field.
func SeniorityHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSeniority, v))
}

// SeniorityHasSuffix applies the HasSuffix predicate on the "seniority" field.
func SeniorityHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSeniority, v))
}

// SeniorityIsNil applies the IsNil predicate on the "seniority" field.
func SeniorityIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSeniority))
}

// SeniorityNotNil applies the NotNil predicate on the "seniority" field.
func SeniorityNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSeniority))
}

// SeniorityEqualFold applies the EqualFold predicate on the "seniority" field.
func SeniorityEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSeniority, v))
}

// SeniorityContainsFold applies the ContainsFold predicate on the "seniority" field.
func SeniorityContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSeniority, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldDepartment, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldDescription, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldSkills))
}

// BenefitsIsNil applies the IsNil predicate on the "benefits" field.
func BenefitsIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldBenefits))
}

// BenefitsNotNil applies the NotNil predicate on the "benefits" field.
func BenefitsNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldBenefits))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldStatus, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldSource, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldConfidence))
}

// EmailIDEQ applies the EQ predicate on the "email_id" field.
func EmailIDEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailID, v))
}

// EmailIDNEQ applies the NEQ predicate on the "email_id" field.
func EmailIDNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldEmailID, v))
}

// EmailIDIn applies the In predicate on the "email_id" field.
func EmailIDIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldEmailID, vs...))
}

// EmailIDNotIn applies the NotIn predicate on the "email_id" field.
func EmailIDNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldEmailID, vs...))
}

// EmailIDGT applies the GT predicate on the "email_id" field.
func EmailIDGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldEmailID, v))
}

// EmailIDGTE applies the GTE predicate on the "email_id" field.
func EmailIDGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldEmailID, v))
}

// EmailIDLT applies the LT predicate on the "email_id" field.
func EmailIDLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldEmailID, v))
}

// EmailIDLTE applies the LTE predicate on the "email_id" field.
func EmailIDLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldEmailID, v))
}

// EmailIDContains applies the Contains predicate on the "email_id" field.
func EmailIDContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldEmailID, v))
}

// EmailIDHasPrefix applies the HasPrefix predicate on the "email_id" field.
func EmailIDHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldEmailID, v))
}

// EmailIDHasSuffix applies the HasSuffix predicate on the "email_id" field.
func EmailIDHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldEmailID, v))
}

// EmailIDIsNil applies the IsNil predicate on the "email_id" field.
func EmailIDIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldEmailID))
}

// EmailIDNotNil applies the NotNil predicate on the "email_id" field.
func EmailIDNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldEmailID))
}

// EmailIDEqualFold applies the EqualFold predicate on the "email_id" field.
func EmailIDEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldEmailID, v))
}

// EmailIDContainsFold applies the ContainsFold predicate on the "email_id" field.
func EmailIDContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldEmailID, v))
}

// EmailSubjectEQ applies the EQ predicate on the "email_subject" field.
func EmailSubjectEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailSubject, v))
}

// EmailSubjectNEQ applies the NEQ predicate on the "email_subject" field.
func EmailSubjectNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldEmailSubject, v))
}

// EmailSubjectIn applies the In predicate on the "email_subject" field.
func EmailSubjectIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldEmailSubject, vs...))
}

// EmailSubjectNotIn applies the NotIn predicate on the "email_subject" field.
func EmailSubjectNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldEmailSubject, vs...))
}

// EmailSubjectGT applies the GT predicate on the "email_subject" field.
func EmailSubjectGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldEmailSubject, v))
}

// EmailSubjectGTE applies the GTE predicate on the "email_subject" field.
func EmailSubjectGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldEmailSubject, v))
}

// EmailSubjectLT applies the LT predicate on the "email_subject" field.
func EmailSubjectLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldEmailSubject, v))
}

// EmailSubjectLTE applies the LTE predicate on the "email_subject" field.
func EmailSubjectLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldEmailSubject, v))
}

// EmailSubjectContains applies the Contains predicate on the "email_subject" field.
func EmailSubjectContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldEmailSubject, v))
}

// EmailSubjectHasPrefix applies the HasPrefix predicate on the "email_subject" field.
func EmailSubjectHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldEmailSubject, v))
}

// EmailSubjectHasSuffix applies the HasSuffix predicate on the "email_subject" field.
func EmailSubjectHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldEmailSubject, v))
}

// EmailSubjectIsNil applies the IsNil predicate on the "email_subject" field.
func EmailSubjectIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldEmailSubject))
}

// EmailSubjectNotNil applies the NotNil predicate on the "email_subject" field.
func EmailSubjectNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldEmailSubject))
}

// EmailSubjectEqualFold applies the EqualFold predicate on the "email_subject" field.
func EmailSubjectEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldEmailSubject, v))
}

// EmailSubjectContainsFold applies the ContainsFold predicate on the "email_subject" field.
func EmailSubjectContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldEmailSubject, v))
}

// EmailFromEQ applies the EQ predicate on the "email_from" field.
func EmailFromEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailFrom, v))
}

// EmailFromNEQ applies the NEQ predicate on the "email_from" field.
func EmailFromNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldEmailFrom, v))
}

// EmailFromIn applies the In predicate on the "email_from" field.
func EmailFromIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldEmailFrom, vs...))
}

// EmailFromNotIn applies the NotIn predicate on the "email_from" field.
func EmailFromNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldEmailFrom, vs...))
}

// EmailFromGT applies the GT predicate on the "email_from" field.
func EmailFromGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldEmailFrom, v))
}

// EmailFromGTE applies the GTE predicate on the "email_from" field.
func EmailFromGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldEmailFrom, v))
}

// EmailFromLT applies the LT predicate on the "email_from" field.
func EmailFromLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldEmailFrom, v))
}

// EmailFromLTE applies the LTE predicate on the "email_from" field.
func EmailFromLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldEmailFrom, v))
}

// EmailFromContains applies the Contains predicate on the "email_from" field.
func EmailFromContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldEmailFrom, v))
}

// EmailFromHasPrefix applies the HasPrefix predicate on the "email_from" field.
func EmailFromHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldEmailFrom, v))
}

// EmailFromHasSuffix applies the HasSuffix predicate on the "email_from" field.
func EmailFromHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldEmailFrom, v))
}

// EmailFromIsNil applies the IsNil predicate on the "email_from" field.
func EmailFromIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldEmailFrom))
}

// EmailFromNotNil applies the NotNil predicate on the "email_from" field.
func EmailFromNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldEmailFrom))
}

// EmailFromEqualFold applies the EqualFold predicate on the "email_from" field.
func EmailFromEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldEmailFrom, v))
}

// EmailFromContainsFold applies the ContainsFold predicate on the "email_from" field.
func EmailFromContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldEmailFrom, v))
}

// EmailDateEQ applies the EQ predicate on the "email_date" field.
func EmailDateEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldEmailDate, v))
}

// EmailDateNEQ applies the NEQ predicate on the "email_date" field.
func EmailDateNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldEmailDate, v))
}

// EmailDateIn applies the In predicate on the "email_date" field.
func EmailDateIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldEmailDate, vs...))
}

// EmailDateNotIn applies the NotIn predicate on the "email_date" field.
func EmailDateNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldEmailDate, vs...))
}

// EmailDateGT applies the GT predicate on the "email_date" field.
func EmailDateGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldEmailDate, v))
}

// EmailDateGTE applies the GTE predicate on the "email_date" field.
func EmailDateGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldEmailDate, v))
}

// EmailDateLT applies the LT predicate on the "email_date" field.
func EmailDateLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldEmailDate, v))
}

// EmailDateLTE applies the LTE predicate on the "email_date" field.
func EmailDateLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldEmailDate, v))
}

// EmailDateIsNil applies the IsNil predicate on the "email_date" field.
func EmailDateIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldEmailDate))
}

// EmailDateNotNil applies the NotNil predicate on the "email_date" field.
func EmailDateNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldEmailDate))
}

// AddedAtEQ applies the EQ predicate on the "added_at" field.
func AddedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldAddedAt, v))
}

// AddedAtNEQ applies the NEQ predicate on the "added_at" field.
func AddedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldAddedAt, v))
}

// AddedAtIn applies the In predicate on the "added_at" field.
func AddedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldAddedAt, vs...))
}

// AddedAtNotIn applies the NotIn predicate on the "added_at" field.
func AddedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldAddedAt, vs...))
}

// AddedAtGT applies the GT predicate on the "added_at" field.
func AddedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldAddedAt, v))
}

// AddedAtGTE applies the GTE predicate on the "added_at" field.
func AddedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldAddedAt, v))
}

// AddedAtLT applies the LT predicate on the "added_at" field.
func AddedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldAddedAt, v))
}

// AddedAtLTE applies the LTE predicate on the "added_at" field.
func AddedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldAddedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
