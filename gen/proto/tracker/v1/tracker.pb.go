// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: tracker/v1/tracker.proto

package trackerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Application struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CompanyName     string                 `protobuf:"bytes,2,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	JobTitle        string                 `protobuf:"bytes,3,opt,name=job_title,json=jobTitle,proto3" json:"job_title,omitempty"`
	Location        string                 `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	WorkArrangement string                 `protobuf:"bytes,5,opt,name=work_arrangement,json=workArrangement,proto3" json:"work_arrangement,omitempty"`
	Salary          string                 `protobuf:"bytes,6,opt,name=salary,proto3" json:"salary,omitempty"`
	JobType         string                 `protobuf:"bytes,7,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	Seniority       string                 `protobuf:"bytes,8,opt,name=seniority,proto3" json:"seniority,omitempty"`
	Department      string                 `protobuf:"bytes,9,opt,name=department,proto3" json:"department,omitempty"`
	Description     string                 `protobuf:"bytes,10,opt,name=description,proto3" json:"description,omitempty"`
	Skills          []string               `protobuf:"bytes,11,rep,name=skills,proto3" json:"skills,omitempty"`
	Benefits        []string               `protobuf:"bytes,12,rep,name=benefits,proto3" json:"benefits,omitempty"`
	Status          string                 `protobuf:"bytes,13,opt,name=status,proto3" json:"status,omitempty"`
	Source          string                 `protobuf:"bytes,14,opt,name=source,proto3" json:"source,omitempty"`
	Confidence      float32                `protobuf:"fixed32,15,opt,name=confidence,proto3" json:"confidence,omitempty"`
	EmailId         string                 `protobuf:"bytes,16,opt,name=email_id,json=emailId,proto3" json:"email_id,omitempty"`
	EmailSubject    string                 `protobuf:"bytes,17,opt,name=email_subject,json=emailSubject,proto3" json:"email_subject,omitempty"`
	EmailFrom       string                 `protobuf:"bytes,18,opt,name=email_from,json=emailFrom,proto3" json:"email_from,omitempty"`
	EmailDate       string                 `protobuf:"bytes,19,opt,name=email_date,json=emailDate,proto3" json:"email_date,omitempty"`
	AddedAt         string                 `protobuf:"bytes,20,opt,name=added_at,json=addedAt,proto3" json:"added_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Application) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Application) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Application) GetJobTitle() string {
	if x != nil {
		return x.JobTitle
	}
	return ""
}

func (x *Application) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Application) GetWorkArrangement() string {
	if x != nil {
		return x.WorkArrangement
	}
	return ""
}

func (x *Application) GetSalary() string {
	if x != nil {
		return x.Salary
	}
	return ""
}

func (x *Application) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *Application) GetSeniority() string {
	if x != nil {
		return x.Seniority
	}
	return ""
}

func (x *Application) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Application) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Application) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Application) GetBenefits() []string {
	if x != nil {
		return x.Benefits
	}
	return nil
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Application) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Application) GetEmailId() string {
	if x != nil {
		return x.EmailId
	}
	return ""
}

func (x *Application) GetEmailSubject() string {
	if x != nil {
		return x.EmailSubject
	}
	return ""
}

func (x *Application) GetEmailFrom() string {
	if x != nil {
		return x.EmailFrom
	}
	return ""
}

func (x *Application) GetEmailDate() string {
	if x != nil {
		return x.EmailDate
	}
	return ""
}

func (x *Application) GetAddedAt() string {
	if x != nil {
		return x.AddedAt
	}
	return ""
}

func (x *Application) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ScanJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	StartedAt     string                 `protobuf:"bytes,3,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,4,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Scanned       int32                  `protobuf:"varint,5,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Relevant      int32                  `protobuf:"varint,6,opt,name=relevant,proto3" json:"relevant,omitempty"`
	Created       int32                  `protobuf:"varint,7,opt,name=created,proto3" json:"created,omitempty"`
	Updated       int32                  `protobuf:"varint,8,opt,name=updated,proto3" json:"updated,omitempty"`
	Skipped       int32                  `protobuf:"varint,9,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Failed        int32                  `protobuf:"varint,10,opt,name=failed,proto3" json:"failed,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanJob) Reset() {
	*x = ScanJob{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanJob) ProtoMessage() {}

func (x *ScanJob) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanJob.ProtoReflect.Descriptor instead.
func (*ScanJob) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *ScanJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ScanJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ScanJob) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ScanJob) GetRelevant() int32 {
	if x != nil {
		return x.Relevant
	}
	return 0
}

func (x *ScanJob) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *ScanJob) GetUpdated() int32 {
	if x != nil {
		return x.Updated
	}
	return 0
}

func (x *ScanJob) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *ScanJob) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ScanJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *ListApplicationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListApplicationsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ListApplicationsRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type GetApplicationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicationRequest) Reset() {
	*x = GetApplicationRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicationRequest) ProtoMessage() {}

func (x *GetApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicationRequest.ProtoReflect.Descriptor instead.
func (*GetApplicationRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *GetApplicationRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetApplicationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicationResponse) Reset() {
	*x = GetApplicationResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicationResponse) ProtoMessage() {}

func (x *GetApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicationResponse.ProtoReflect.Descriptor instead.
func (*GetApplicationResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{5}
}

func (x *GetApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

type AddApplicationRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Raw posting text (pasted or OCR output).
	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// Optional initial status; defaults to "interested".
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddApplicationRequest) Reset() {
	*x = AddApplicationRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddApplicationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddApplicationRequest) ProtoMessage() {}

func (x *AddApplicationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddApplicationRequest.ProtoReflect.Descriptor instead.
func (*AddApplicationRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *AddApplicationRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *AddApplicationRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type AddApplicationResponse struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Application *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	// false means the posting merged into an existing entry.
	Created       bool `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddApplicationResponse) Reset() {
	*x = AddApplicationResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddApplicationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddApplicationResponse) ProtoMessage() {}

func (x *AddApplicationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddApplicationResponse.ProtoReflect.Descriptor instead.
func (*AddApplicationResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *AddApplicationResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *AddApplicationResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type AnalyzeScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeScreenshotRequest) Reset() {
	*x = AnalyzeScreenshotRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeScreenshotRequest) ProtoMessage() {}

func (x *AnalyzeScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeScreenshotRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *AnalyzeScreenshotRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type AnalyzeScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	Created       bool                   `protobuf:"varint,2,opt,name=created,proto3" json:"created,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeScreenshotResponse) Reset() {
	*x = AnalyzeScreenshotResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeScreenshotResponse) ProtoMessage() {}

func (x *AnalyzeScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeScreenshotResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *AnalyzeScreenshotResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *AnalyzeScreenshotResponse) GetCreated() bool {
	if x != nil {
		return x.Created
	}
	return false
}

type UpdateStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStatusRequest) Reset() {
	*x = UpdateStatusRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStatusRequest) ProtoMessage() {}

func (x *UpdateStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateStatusRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateStatusRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStatusResponse) Reset() {
	*x = UpdateStatusResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStatusResponse) ProtoMessage() {}

func (x *UpdateStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateStatusResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateStatusResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

type ScanMailboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanMailboxRequest) Reset() {
	*x = ScanMailboxRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanMailboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanMailboxRequest) ProtoMessage() {}

func (x *ScanMailboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanMailboxRequest.ProtoReflect.Descriptor instead.
func (*ScanMailboxRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{12}
}

type ScanMailboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanMailboxResponse) Reset() {
	*x = ScanMailboxResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanMailboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanMailboxResponse) ProtoMessage() {}

func (x *ScanMailboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanMailboxResponse.ProtoReflect.Descriptor instead.
func (*ScanMailboxResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{13}
}

func (x *ScanMailboxResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansRequest) Reset() {
	*x = ListScansRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansRequest) ProtoMessage() {}

func (x *ListScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansRequest.ProtoReflect.Descriptor instead.
func (*ListScansRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *ListScansRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ScanJob             `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansResponse) Reset() {
	*x = ListScansResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansResponse) ProtoMessage() {}

func (x *ListScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansResponse.ProtoReflect.Descriptor instead.
func (*ListScansResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{15}
}

func (x *ListScansResponse) GetJobs() []*ScanJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Company       string                 `protobuf:"bytes,3,opt,name=company,proto3" json:"company,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsRequest) Reset() {
	*x = ExportApplicationsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsRequest) ProtoMessage() {}

func (x *ExportApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ExportApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{16}
}

func (x *ExportApplicationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportApplicationsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExportApplicationsRequest) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

type ExportApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsResponse) Reset() {
	*x = ExportApplicationsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsResponse) ProtoMessage() {}

func (x *ExportApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ExportApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *ExportApplicationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_tracker_v1_tracker_proto protoreflect.FileDescriptor

const file_tracker_v1_tracker_proto_rawDesc = "" +
	"\n" +
	"\x18tracker/v1/tracker.proto\x12\n" +
	"tracker.v1\"\xf3\x04\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fcompany_name\x18\x02 \x01(\tR\vcompanyName\x12\x1b\n" +
	"\tjob_title\x18\x03 \x01(\tR\bjobTitle\x12\x1a\n" +
	"\blocation\x18\x04 \x01(\tR\blocation\x12)\n" +
	"\x10work_arrangement\x18\x05 \x01(\tR\x0fworkArrangement\x12\x16\n" +
	"\x06salary\x18\x06 \x01(\tR\x06salary\x12\x19\n" +
	"\bjob_type\x18\a \x01(\tR\ajobType\x12\x1c\n" +
	"\tseniority\x18\b \x01(\tR\tseniority\x12\x1e\n" +
	"\n" +
	"department\x18\t \x01(\tR\n" +
	"department\x12 \n" +
	"\vdescription\x18\n" +
	" \x01(\tR\vdescription\x12\x16\n" +
	"\x06skills\x18\v \x03(\tR\x06skills\x12\x1a\n" +
	"\bbenefits\x18\f \x03(\tR\bbenefits\x12\x16\n" +
	"\x06status\x18\r \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x0e \x01(\tR\x06source\x12\x1e\n" +
	"\n" +
	"confidence\x18\x0f \x01(\x02R\n" +
	"confidence\x12\x19\n" +
	"\bemail_id\x18\x10 \x01(\tR\aemailId\x12#\n" +
	"\remail_subject\x18\x11 \x01(\tR\femailSubject\x12\x1d\n" +
	"\n" +
	"email_from\x18\x12 \x01(\tR\temailFrom\x12\x1d\n" +
	"\n" +
	"email_date\x18\x13 \x01(\tR\temailDate\x12\x19\n" +
	"\badded_at\x18\x14 \x01(\tR\aaddedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x15 \x01(\tR\tupdatedAt\"\xb2\x02\n" +
	"\aScanJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x03 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x04 \x01(\tR\n" +
	"finishedAt\x12\x18\n" +
	"\ascanned\x18\x05 \x01(\x05R\ascanned\x12\x1a\n" +
	"\brelevant\x18\x06 \x01(\x05R\brelevant\x12\x18\n" +
	"\acreated\x18\a \x01(\x05R\acreated\x12\x18\n" +
	"\aupdated\x18\b \x01(\x05R\aupdated\x12\x18\n" +
	"\askipped\x18\t \x01(\x05R\askipped\x12\x16\n" +
	"\x06failed\x18\n" +
	" \x01(\x05R\x06failed\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\"c\n" +
	"\x17ListApplicationsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\"W\n" +
	"\x18ListApplicationsResponse\x12;\n" +
	"\fapplications\x18\x01 \x03(\v2\x17.tracker.v1.ApplicationR\fapplications\"'\n" +
	"\x15GetApplicationRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"S\n" +
	"\x16GetApplicationResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.tracker.v1.ApplicationR\vapplication\"C\n" +
	"\x15AddApplicationRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"m\n" +
	"\x16AddApplicationResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.tracker.v1.ApplicationR\vapplication\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\".\n" +
	"\x18AnalyzeScreenshotRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"p\n" +
	"\x19AnalyzeScreenshotResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.tracker.v1.ApplicationR\vapplication\x12\x18\n" +
	"\acreated\x18\x02 \x01(\bR\acreated\"=\n" +
	"\x13UpdateStatusRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"Q\n" +
	"\x14UpdateStatusResponse\x129\n" +
	"\vapplication\x18\x01 \x01(\v2\x17.tracker.v1.ApplicationR\vapplication\"\x14\n" +
	"\x12ScanMailboxRequest\"<\n" +
	"\x13ScanMailboxResponse\x12%\n" +
	"\x03job\x18\x01 \x01(\v2\x13.tracker.v1.ScanJobR\x03job\"(\n" +
	"\x10ListScansRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"<\n" +
	"\x11ListScansResponse\x12'\n" +
	"\x04jobs\x18\x01 \x03(\v2\x13.tracker.v1.ScanJobR\x04jobs\"e\n" +
	"\x19ExportApplicationsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x18\n" +
	"\acompany\x18\x03 \x01(\tR\acompany\"0\n" +
	"\x1aExportApplicationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd6\x03\n" +
	"\x0eTrackerService\x12]\n" +
	"\x10ListApplications\x12#.tracker.v1.ListApplicationsRequest\x1a$.tracker.v1.ListApplicationsResponse\x12W\n" +
	"\x0eGetApplication\x12!.tracker.v1.GetApplicationRequest\x1a\".tracker.v1.GetApplicationResponse\x12W\n" +
	"\x0eAddApplication\x12!.tracker.v1.AddApplicationRequest\x1a\".tracker.v1.AddApplicationResponse\x12`\n" +
	"\x11AnalyzeScreenshot\x12$.tracker.v1.AnalyzeScreenshotRequest\x1a%.tracker.v1.AnalyzeScreenshotResponse\x12Q\n" +
	"\fUpdateStatus\x12\x1f.tracker.v1.UpdateStatusRequest\x1a .tracker.v1.UpdateStatusResponse2\xa7\x01\n" +
	"\vScanService\x12N\n" +
	"\vScanMailbox\x12\x1e.tracker.v1.ScanMailboxRequest\x1a\x1f.tracker.v1.ScanMailboxResponse\x12H\n" +
	"\tListScans\x12\x1c.tracker.v1.ListScansRequest\x1a\x1d.tracker.v1.ListScansResponse2t\n" +
	"\rExportService\x12c\n" +
	"\x12ExportApplications\x12%.tracker.v1.ExportApplicationsRequest\x1a&.tracker.v1.ExportApplicationsResponseBJZHgithub.com/manasvohal/aiInternshipTracker/gen/proto/tracker/v1;trackerv1b\x06proto3"

var (
	file_tracker_v1_tracker_proto_rawDescOnce sync.Once
	file_tracker_v1_tracker_proto_rawDescData []byte
)

func file_tracker_v1_tracker_proto_rawDescGZIP() []byte {
	file_tracker_v1_tracker_proto_rawDescOnce.Do(func() {
		file_tracker_v1_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)))
	})
	return file_tracker_v1_tracker_proto_rawDescData
}

var file_tracker_v1_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_tracker_v1_tracker_proto_goTypes = []any{
	(*Application)(nil),                // 0: tracker.v1.Application
	(*ScanJob)(nil),                    // 1: tracker.v1.ScanJob
	(*ListApplicationsRequest)(nil),    // 2: tracker.v1.ListApplicationsRequest
	(*ListApplicationsResponse)(nil),   // 3: tracker.v1.ListApplicationsResponse
	(*GetApplicationRequest)(nil),      // 4: tracker.v1.GetApplicationRequest
	(*GetApplicationResponse)(nil),     // 5: tracker.v1.GetApplicationResponse
	(*AddApplicationRequest)(nil),      // 6: tracker.v1.AddApplicationRequest
	(*AddApplicationResponse)(nil),     // 7: tracker.v1.AddApplicationResponse
	(*AnalyzeScreenshotRequest)(nil),   // 8: tracker.v1.AnalyzeScreenshotRequest
	(*AnalyzeScreenshotResponse)(nil),  // 9: tracker.v1.AnalyzeScreenshotResponse
	(*UpdateStatusRequest)(nil),        // 10: tracker.v1.UpdateStatusRequest
	(*UpdateStatusResponse)(nil),       // 11: tracker.v1.UpdateStatusResponse
	(*ScanMailboxRequest)(nil),         // 12: tracker.v1.ScanMailboxRequest
	(*ScanMailboxResponse)(nil),        // 13: tracker.v1.ScanMailboxResponse
	(*ListScansRequest)(nil),           // 14: tracker.v1.ListScansRequest
	(*ListScansResponse)(nil),          // 15: tracker.v1.ListScansResponse
	(*ExportApplicationsRequest)(nil),  // 16: tracker.v1.ExportApplicationsRequest
	(*ExportApplicationsResponse)(nil), // 17: tracker.v1.ExportApplicationsResponse
}
var file_tracker_v1_tracker_proto_depIdxs = []int32{
	0,  // 0: tracker.v1.ListApplicationsResponse.applications:type_name -> tracker.v1.Application
	0,  // 1: tracker.v1.GetApplicationResponse.application:type_name -> tracker.v1.Application
	0,  // 2: tracker.v1.AddApplicationResponse.application:type_name -> tracker.v1.Application
	0,  // 3: tracker.v1.AnalyzeScreenshotResponse.application:type_name -> tracker.v1.Application
	0,  // 4: tracker.v1.UpdateStatusResponse.application:type_name -> tracker.v1.Application
	1,  // 5: tracker.v1.ScanMailboxResponse.job:type_name -> tracker.v1.ScanJob
	1,  // 6: tracker.v1.ListScansResponse.jobs:type_name -> tracker.v1.ScanJob
	2,  // 7: tracker.v1.TrackerService.ListApplications:input_type -> tracker.v1.ListApplicationsRequest
	4,  // 8: tracker.v1.TrackerService.GetApplication:input_type -> tracker.v1.GetApplicationRequest
	6,  // 9: tracker.v1.TrackerService.AddApplication:input_type -> tracker.v1.AddApplicationRequest
	8,  // 10: tracker.v1.TrackerService.AnalyzeScreenshot:input_type -> tracker.v1.AnalyzeScreenshotRequest
	10, // 11: tracker.v1.TrackerService.UpdateStatus:input_type -> tracker.v1.UpdateStatusRequest
	12, // 12: tracker.v1.ScanService.ScanMailbox:input_type -> tracker.v1.ScanMailboxRequest
	14, // 13: tracker.v1.ScanService.ListScans:input_type -> tracker.v1.ListScansRequest
	16, // 14: tracker.v1.ExportService.ExportApplications:input_type -> tracker.v1.ExportApplicationsRequest
	3,  // 15: tracker.v1.TrackerService.ListApplications:output_type -> tracker.v1.ListApplicationsResponse
	5,  // 16: tracker.v1.TrackerService.GetApplication:output_type -> tracker.v1.GetApplicationResponse
	7,  // 17: tracker.v1.TrackerService.AddApplication:output_type -> tracker.v1.AddApplicationResponse
	9,  // 18: tracker.v1.TrackerService.AnalyzeScreenshot:output_type -> tracker.v1.AnalyzeScreenshotResponse
	11, // 19: tracker.v1.TrackerService.UpdateStatus:output_type -> tracker.v1.UpdateStatusResponse
	13, // 20: tracker.v1.ScanService.ScanMailbox:output_type -> tracker.v1.ScanMailboxResponse
	15, // 21: tracker.v1.ScanService.ListScans:output_type -> tracker.v1.ListScansResponse
	17, // 22: tracker.v1.ExportService.ExportApplications:output_type -> tracker.v1.ExportApplicationsResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_tracker_v1_tracker_proto_init() }
func file_tracker_v1_tracker_proto_init() {
	if File_tracker_v1_tracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_tracker_v1_tracker_proto_goTypes,
		DependencyIndexes: file_tracker_v1_tracker_proto_depIdxs,
		MessageInfos:      file_tracker_v1_tracker_proto_msgTypes,
	}.Build()
	File_tracker_v1_tracker_proto = out.File
	file_tracker_v1_tracker_proto_goTypes = nil
	file_tracker_v1_tracker_proto_depIdxs = nil
}
