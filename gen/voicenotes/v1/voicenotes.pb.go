// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: voicenotes/v1/voicenotes.proto

package voicenotesv1

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

type RegisterTranscriptFileRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Filename       string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	SourcePath     string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	TranscriptText string                 `protobuf:"bytes,3,opt,name=transcript_text,json=transcriptText,proto3" json:"transcript_text,omitempty"`
	SegmentsJson   string                 `protobuf:"bytes,4,opt,name=segments_json,json=segmentsJson,proto3" json:"segments_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RegisterTranscriptFileRequest) Reset() {
	*x = RegisterTranscriptFileRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterTranscriptFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterTranscriptFileRequest) ProtoMessage() {}

func (x *RegisterTranscriptFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterTranscriptFileRequest.ProtoReflect.Descriptor instead.
func (*RegisterTranscriptFileRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{0}
}

func (x *RegisterTranscriptFileRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *RegisterTranscriptFileRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *RegisterTranscriptFileRequest) GetTranscriptText() string {
	if x != nil {
		return x.TranscriptText
	}
	return ""
}

func (x *RegisterTranscriptFileRequest) GetSegmentsJson() string {
	if x != nil {
		return x.SegmentsJson
	}
	return ""
}

type RegisterTranscriptFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterTranscriptFileResponse) Reset() {
	*x = RegisterTranscriptFileResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterTranscriptFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterTranscriptFileResponse) ProtoMessage() {}

func (x *RegisterTranscriptFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterTranscriptFileResponse.ProtoReflect.Descriptor instead.
func (*RegisterTranscriptFileResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterTranscriptFileResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type RunDynamicProcessingRequest struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	FileId                    string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	SummarizationPromptId     string                 `protobuf:"bytes,2,opt,name=summarization_prompt_id,json=summarizationPromptId,proto3" json:"summarization_prompt_id,omitempty"`
	ExtractionDefinitionIds   []string               `protobuf:"bytes,3,rep,name=extraction_definition_ids,json=extractionDefinitionIds,proto3" json:"extraction_definition_ids,omitempty"`
	CustomSummarizationPrompt string                 `protobuf:"bytes,4,opt,name=custom_summarization_prompt,json=customSummarizationPrompt,proto3" json:"custom_summarization_prompt,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *RunDynamicProcessingRequest) Reset() {
	*x = RunDynamicProcessingRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDynamicProcessingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDynamicProcessingRequest) ProtoMessage() {}

func (x *RunDynamicProcessingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDynamicProcessingRequest.ProtoReflect.Descriptor instead.
func (*RunDynamicProcessingRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{2}
}

func (x *RunDynamicProcessingRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *RunDynamicProcessingRequest) GetSummarizationPromptId() string {
	if x != nil {
		return x.SummarizationPromptId
	}
	return ""
}

func (x *RunDynamicProcessingRequest) GetExtractionDefinitionIds() []string {
	if x != nil {
		return x.ExtractionDefinitionIds
	}
	return nil
}

func (x *RunDynamicProcessingRequest) GetCustomSummarizationPrompt() string {
	if x != nil {
		return x.CustomSummarizationPrompt
	}
	return ""
}

type RunDynamicProcessingResponse struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	SessionId              string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ExtractionResultsCount int32                  `protobuf:"varint,2,opt,name=extraction_results_count,json=extractionResultsCount,proto3" json:"extraction_results_count,omitempty"`
	SummaryWritten         bool                   `protobuf:"varint,3,opt,name=summary_written,json=summaryWritten,proto3" json:"summary_written,omitempty"`
	Warning                string                 `protobuf:"bytes,4,opt,name=warning,proto3" json:"warning,omitempty"`
	ProcessingTimeMs       int64                  `protobuf:"varint,5,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *RunDynamicProcessingResponse) Reset() {
	*x = RunDynamicProcessingResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunDynamicProcessingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunDynamicProcessingResponse) ProtoMessage() {}

func (x *RunDynamicProcessingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunDynamicProcessingResponse.ProtoReflect.Descriptor instead.
func (*RunDynamicProcessingResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{3}
}

func (x *RunDynamicProcessingResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *RunDynamicProcessingResponse) GetExtractionResultsCount() int32 {
	if x != nil {
		return x.ExtractionResultsCount
	}
	return 0
}

func (x *RunDynamicProcessingResponse) GetSummaryWritten() bool {
	if x != nil {
		return x.SummaryWritten
	}
	return false
}

func (x *RunDynamicProcessingResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

func (x *RunDynamicProcessingResponse) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

type GetSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionRequest) Reset() {
	*x = GetSessionRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionRequest) ProtoMessage() {}

func (x *GetSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionRequest.ProtoReflect.Descriptor instead.
func (*GetSessionRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{4}
}

func (x *GetSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type Session struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId           string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Model            string                 `protobuf:"bytes,4,opt,name=model,proto3" json:"model,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ProcessingTimeMs int64                  `protobuf:"varint,6,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Session) Reset() {
	*x = Session{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Session) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Session) ProtoMessage() {}

func (x *Session) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Session.ProtoReflect.Descriptor instead.
func (*Session) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{5}
}

func (x *Session) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Session) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Session) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Session) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Session) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Session) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

func (x *Session) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Session       *Session               `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSessionResponse) Reset() {
	*x = GetSessionResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSessionResponse) ProtoMessage() {}

func (x *GetSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSessionResponse.ProtoReflect.Descriptor instead.
func (*GetSessionResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{6}
}

func (x *GetSessionResponse) GetSession() *Session {
	if x != nil {
		return x.Session
	}
	return nil
}

type GetExtractionResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResultsRequest) Reset() {
	*x = GetExtractionResultsRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResultsRequest) ProtoMessage() {}

func (x *GetExtractionResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResultsRequest.ProtoReflect.Descriptor instead.
func (*GetExtractionResultsRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{7}
}

func (x *GetExtractionResultsRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ExtractionResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId      string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	DefinitionId   string                 `protobuf:"bytes,3,opt,name=definition_id,json=definitionId,proto3" json:"definition_id,omitempty"`
	ExtractionType string                 `protobuf:"bytes,4,opt,name=extraction_type,json=extractionType,proto3" json:"extraction_type,omitempty"`
	ContentJson    string                 `protobuf:"bytes,5,opt,name=content_json,json=contentJson,proto3" json:"content_json,omitempty"`
	Model          string                 `protobuf:"bytes,6,opt,name=model,proto3" json:"model,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{8}
}

func (x *ExtractionResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionResult) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ExtractionResult) GetDefinitionId() string {
	if x != nil {
		return x.DefinitionId
	}
	return ""
}

func (x *ExtractionResult) GetExtractionType() string {
	if x != nil {
		return x.ExtractionType
	}
	return ""
}

func (x *ExtractionResult) GetContentJson() string {
	if x != nil {
		return x.ContentJson
	}
	return ""
}

func (x *ExtractionResult) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *ExtractionResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetExtractionResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*ExtractionResult    `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetExtractionResultsResponse) Reset() {
	*x = GetExtractionResultsResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetExtractionResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetExtractionResultsResponse) ProtoMessage() {}

func (x *GetExtractionResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetExtractionResultsResponse.ProtoReflect.Descriptor instead.
func (*GetExtractionResultsResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{9}
}

func (x *GetExtractionResultsResponse) GetResults() []*ExtractionResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type GetSummarizationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSummarizationsRequest) Reset() {
	*x = GetSummarizationsRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummarizationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummarizationsRequest) ProtoMessage() {}

func (x *GetSummarizationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummarizationsRequest.ProtoReflect.Descriptor instead.
func (*GetSummarizationsRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{10}
}

func (x *GetSummarizationsRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type Summarization struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,3,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Model         string                 `protobuf:"bytes,5,opt,name=model,proto3" json:"model,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Summarization) Reset() {
	*x = Summarization{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Summarization) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Summarization) ProtoMessage() {}

func (x *Summarization) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Summarization.ProtoReflect.Descriptor instead.
func (*Summarization) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{11}
}

func (x *Summarization) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Summarization) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *Summarization) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *Summarization) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Summarization) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

func (x *Summarization) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetSummarizationsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Summarizations []*Summarization       `protobuf:"bytes,1,rep,name=summarizations,proto3" json:"summarizations,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetSummarizationsResponse) Reset() {
	*x = GetSummarizationsResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSummarizationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSummarizationsResponse) ProtoMessage() {}

func (x *GetSummarizationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSummarizationsResponse.ProtoReflect.Descriptor instead.
func (*GetSummarizationsResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{12}
}

func (x *GetSummarizationsResponse) GetSummarizations() []*Summarization {
	if x != nil {
		return x.Summarizations
	}
	return nil
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{13}
}

func (x *ExportResultsRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workbook      []byte                 `protobuf:"bytes,1,opt,name=workbook,proto3" json:"workbook,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{14}
}

func (x *ExportResultsResponse) GetWorkbook() []byte {
	if x != nil {
		return x.Workbook
	}
	return nil
}

func (x *ExportResultsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type CreateExtractionDefinitionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	JsonKey        string                 `protobuf:"bytes,2,opt,name=json_key,json=jsonKey,proto3" json:"json_key,omitempty"`
	Category       string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	OutputType     string                 `protobuf:"bytes,4,opt,name=output_type,json=outputType,proto3" json:"output_type,omitempty"`
	AiInstructions string                 `protobuf:"bytes,5,opt,name=ai_instructions,json=aiInstructions,proto3" json:"ai_instructions,omitempty"`
	JsonSchema     string                 `protobuf:"bytes,6,opt,name=json_schema,json=jsonSchema,proto3" json:"json_schema,omitempty"`
	SortOrder      int32                  `protobuf:"varint,7,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateExtractionDefinitionRequest) Reset() {
	*x = CreateExtractionDefinitionRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateExtractionDefinitionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateExtractionDefinitionRequest) ProtoMessage() {}

func (x *CreateExtractionDefinitionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateExtractionDefinitionRequest.ProtoReflect.Descriptor instead.
func (*CreateExtractionDefinitionRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{15}
}

func (x *CreateExtractionDefinitionRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetJsonKey() string {
	if x != nil {
		return x.JsonKey
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetOutputType() string {
	if x != nil {
		return x.OutputType
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetAiInstructions() string {
	if x != nil {
		return x.AiInstructions
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetJsonSchema() string {
	if x != nil {
		return x.JsonSchema
	}
	return ""
}

func (x *CreateExtractionDefinitionRequest) GetSortOrder() int32 {
	if x != nil {
		return x.SortOrder
	}
	return 0
}

type ExtractionDefinition struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	JsonKey        string                 `protobuf:"bytes,3,opt,name=json_key,json=jsonKey,proto3" json:"json_key,omitempty"`
	Category       string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	OutputType     string                 `protobuf:"bytes,5,opt,name=output_type,json=outputType,proto3" json:"output_type,omitempty"`
	AiInstructions string                 `protobuf:"bytes,6,opt,name=ai_instructions,json=aiInstructions,proto3" json:"ai_instructions,omitempty"`
	JsonSchema     string                 `protobuf:"bytes,7,opt,name=json_schema,json=jsonSchema,proto3" json:"json_schema,omitempty"`
	SortOrder      int32                  `protobuf:"varint,8,opt,name=sort_order,json=sortOrder,proto3" json:"sort_order,omitempty"`
	IsActive       bool                   `protobuf:"varint,9,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractionDefinition) Reset() {
	*x = ExtractionDefinition{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionDefinition) ProtoMessage() {}

func (x *ExtractionDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionDefinition.ProtoReflect.Descriptor instead.
func (*ExtractionDefinition) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{16}
}

func (x *ExtractionDefinition) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExtractionDefinition) GetJsonKey() string {
	if x != nil {
		return x.JsonKey
	}
	return ""
}

func (x *ExtractionDefinition) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExtractionDefinition) GetOutputType() string {
	if x != nil {
		return x.OutputType
	}
	return ""
}

func (x *ExtractionDefinition) GetAiInstructions() string {
	if x != nil {
		return x.AiInstructions
	}
	return ""
}

func (x *ExtractionDefinition) GetJsonSchema() string {
	if x != nil {
		return x.JsonSchema
	}
	return ""
}

func (x *ExtractionDefinition) GetSortOrder() int32 {
	if x != nil {
		return x.SortOrder
	}
	return 0
}

func (x *ExtractionDefinition) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type CreateExtractionDefinitionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Definition    *ExtractionDefinition  `protobuf:"bytes,1,opt,name=definition,proto3" json:"definition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateExtractionDefinitionResponse) Reset() {
	*x = CreateExtractionDefinitionResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateExtractionDefinitionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateExtractionDefinitionResponse) ProtoMessage() {}

func (x *CreateExtractionDefinitionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateExtractionDefinitionResponse.ProtoReflect.Descriptor instead.
func (*CreateExtractionDefinitionResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{17}
}

func (x *CreateExtractionDefinitionResponse) GetDefinition() *ExtractionDefinition {
	if x != nil {
		return x.Definition
	}
	return nil
}

type ListExtractionDefinitionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionDefinitionsRequest) Reset() {
	*x = ListExtractionDefinitionsRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionDefinitionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionDefinitionsRequest) ProtoMessage() {}

func (x *ListExtractionDefinitionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionDefinitionsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionDefinitionsRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{18}
}

type ListExtractionDefinitionsResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Definitions   []*ExtractionDefinition `protobuf:"bytes,1,rep,name=definitions,proto3" json:"definitions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionDefinitionsResponse) Reset() {
	*x = ListExtractionDefinitionsResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionDefinitionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionDefinitionsResponse) ProtoMessage() {}

func (x *ListExtractionDefinitionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionDefinitionsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionDefinitionsResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{19}
}

func (x *ListExtractionDefinitionsResponse) GetDefinitions() []*ExtractionDefinition {
	if x != nil {
		return x.Definitions
	}
	return nil
}

type CreateSummarizationPromptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Prompt        string                 `protobuf:"bytes,2,opt,name=prompt,proto3" json:"prompt,omitempty"`
	IsDefault     bool                   `protobuf:"varint,3,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSummarizationPromptRequest) Reset() {
	*x = CreateSummarizationPromptRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSummarizationPromptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSummarizationPromptRequest) ProtoMessage() {}

func (x *CreateSummarizationPromptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSummarizationPromptRequest.ProtoReflect.Descriptor instead.
func (*CreateSummarizationPromptRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{20}
}

func (x *CreateSummarizationPromptRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSummarizationPromptRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *CreateSummarizationPromptRequest) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

type SummarizationPrompt struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Prompt        string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	IsDefault     bool                   `protobuf:"varint,4,opt,name=is_default,json=isDefault,proto3" json:"is_default,omitempty"`
	IsActive      bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizationPrompt) Reset() {
	*x = SummarizationPrompt{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizationPrompt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizationPrompt) ProtoMessage() {}

func (x *SummarizationPrompt) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizationPrompt.ProtoReflect.Descriptor instead.
func (*SummarizationPrompt) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{21}
}

func (x *SummarizationPrompt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SummarizationPrompt) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SummarizationPrompt) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *SummarizationPrompt) GetIsDefault() bool {
	if x != nil {
		return x.IsDefault
	}
	return false
}

func (x *SummarizationPrompt) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type CreateSummarizationPromptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        *SummarizationPrompt   `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSummarizationPromptResponse) Reset() {
	*x = CreateSummarizationPromptResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSummarizationPromptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSummarizationPromptResponse) ProtoMessage() {}

func (x *CreateSummarizationPromptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSummarizationPromptResponse.ProtoReflect.Descriptor instead.
func (*CreateSummarizationPromptResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{22}
}

func (x *CreateSummarizationPromptResponse) GetPrompt() *SummarizationPrompt {
	if x != nil {
		return x.Prompt
	}
	return nil
}

type ListSummarizationPromptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSummarizationPromptsRequest) Reset() {
	*x = ListSummarizationPromptsRequest{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSummarizationPromptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSummarizationPromptsRequest) ProtoMessage() {}

func (x *ListSummarizationPromptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSummarizationPromptsRequest.ProtoReflect.Descriptor instead.
func (*ListSummarizationPromptsRequest) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{23}
}

type ListSummarizationPromptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompts       []*SummarizationPrompt `protobuf:"bytes,1,rep,name=prompts,proto3" json:"prompts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSummarizationPromptsResponse) Reset() {
	*x = ListSummarizationPromptsResponse{}
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSummarizationPromptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSummarizationPromptsResponse) ProtoMessage() {}

func (x *ListSummarizationPromptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voicenotes_v1_voicenotes_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSummarizationPromptsResponse.ProtoReflect.Descriptor instead.
func (*ListSummarizationPromptsResponse) Descriptor() ([]byte, []int) {
	return file_voicenotes_v1_voicenotes_proto_rawDescGZIP(), []int{24}
}

func (x *ListSummarizationPromptsResponse) GetPrompts() []*SummarizationPrompt {
	if x != nil {
		return x.Prompts
	}
	return nil
}

var File_voicenotes_v1_voicenotes_proto protoreflect.FileDescriptor

const file_voicenotes_v1_voicenotes_proto_rawDesc = "" +
	"\n" +
	"\x1evoicenotes/v1/voicenotes.proto\x12\rvoicenotes.v1\"\xaa\x01\n" +
	"\x1dRegisterTranscriptFileRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12'\n" +
	"\x0ftranscript_text\x18\x03 \x01(\tR\x0etranscriptText\x12#\n" +
	"\rsegments_json\x18\x04 \x01(\tR\fsegmentsJson\"9\n" +
	"\x1eRegisterTranscriptFileResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xea\x01\n" +
	"\x1bRunDynamicProcessingRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x126\n" +
	"\x17summarization_prompt_id\x18\x02 \x01(\tR\x15summarizationPromptId\x12:\n" +
	"\x19extraction_definition_ids\x18\x03 \x03(\tR\x17extractionDefinitionIds\x12>\n" +
	"\x1bcustom_summarization_prompt\x18\x04 \x01(\tR\x19customSummarizationPrompt\"\xe8\x01\n" +
	"\x1cRunDynamicProcessingResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x128\n" +
	"\x18extraction_results_count\x18\x02 \x01(\x05R\x16extractionResultsCount\x12'\n" +
	"\x0fsummary_written\x18\x03 \x01(\bR\x0esummaryWritten\x12\x18\n" +
	"\awarning\x18\x04 \x01(\tR\awarning\x12,\n" +
	"\x12processing_time_ms\x18\x05 \x01(\x03R\x10processingTimeMs\"2\n" +
	"\x11GetSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\xd2\x01\n" +
	"\aSession\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x14\n" +
	"\x05model\x18\x04 \x01(\tR\x05model\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12,\n" +
	"\x12processing_time_ms\x18\x06 \x01(\x03R\x10processingTimeMs\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"F\n" +
	"\x12GetSessionResponse\x120\n" +
	"\asession\x18\x01 \x01(\v2\x16.voicenotes.v1.SessionR\asession\"6\n" +
	"\x1bGetExtractionResultsRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xe7\x01\n" +
	"\x10ExtractionResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12#\n" +
	"\rdefinition_id\x18\x03 \x01(\tR\fdefinitionId\x12'\n" +
	"\x0fextraction_type\x18\x04 \x01(\tR\x0eextractionType\x12!\n" +
	"\fcontent_json\x18\x05 \x01(\tR\vcontentJson\x12\x14\n" +
	"\x05model\x18\x06 \x01(\tR\x05model\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"Y\n" +
	"\x1cGetExtractionResultsResponse\x129\n" +
	"\aresults\x18\x01 \x03(\v2\x1f.voicenotes.v1.ExtractionResultR\aresults\"3\n" +
	"\x18GetSummarizationsRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xae\x01\n" +
	"\rSummarization\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vtemplate_id\x18\x03 \x01(\tR\n" +
	"templateId\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12\x14\n" +
	"\x05model\x18\x05 \x01(\tR\x05model\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"a\n" +
	"\x19GetSummarizationsResponse\x12D\n" +
	"\x0esummarizations\x18\x01 \x03(\v2\x1c.voicenotes.v1.SummarizationR\x0esummarizations\"/\n" +
	"\x14ExportResultsRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"O\n" +
	"\x15ExportResultsResponse\x12\x1a\n" +
	"\bworkbook\x18\x01 \x01(\fR\bworkbook\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xf8\x01\n" +
	"!CreateExtractionDefinitionRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x19\n" +
	"\bjson_key\x18\x02 \x01(\tR\ajsonKey\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x1f\n" +
	"\voutput_type\x18\x04 \x01(\tR\n" +
	"outputType\x12'\n" +
	"\x0fai_instructions\x18\x05 \x01(\tR\x0eaiInstructions\x12\x1f\n" +
	"\vjson_schema\x18\x06 \x01(\tR\n" +
	"jsonSchema\x12\x1d\n" +
	"\n" +
	"sort_order\x18\a \x01(\x05R\tsortOrder\"\x98\x02\n" +
	"\x14ExtractionDefinition\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x19\n" +
	"\bjson_key\x18\x03 \x01(\tR\ajsonKey\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12\x1f\n" +
	"\voutput_type\x18\x05 \x01(\tR\n" +
	"outputType\x12'\n" +
	"\x0fai_instructions\x18\x06 \x01(\tR\x0eaiInstructions\x12\x1f\n" +
	"\vjson_schema\x18\a \x01(\tR\n" +
	"jsonSchema\x12\x1d\n" +
	"\n" +
	"sort_order\x18\b \x01(\x05R\tsortOrder\x12\x1b\n" +
	"\tis_active\x18\t \x01(\bR\bisActive\"i\n" +
	"\"CreateExtractionDefinitionResponse\x12C\n" +
	"\n" +
	"definition\x18\x01 \x01(\v2#.voicenotes.v1.ExtractionDefinitionR\n" +
	"definition\"\"\n" +
	" ListExtractionDefinitionsRequest\"j\n" +
	"!ListExtractionDefinitionsResponse\x12E\n" +
	"\vdefinitions\x18\x01 \x03(\v2#.voicenotes.v1.ExtractionDefinitionR\vdefinitions\"m\n" +
	" CreateSummarizationPromptRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06prompt\x18\x02 \x01(\tR\x06prompt\x12\x1d\n" +
	"\n" +
	"is_default\x18\x03 \x01(\bR\tisDefault\"\x8d\x01\n" +
	"\x13SummarizationPrompt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12\x1d\n" +
	"\n" +
	"is_default\x18\x04 \x01(\bR\tisDefault\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\"_\n" +
	"!CreateSummarizationPromptResponse\x12:\n" +
	"\x06prompt\x18\x01 \x01(\v2\".voicenotes.v1.SummarizationPromptR\x06prompt\"!\n" +
	"\x1fListSummarizationPromptsRequest\"`\n" +
	" ListSummarizationPromptsResponse\x12<\n" +
	"\aprompts\x18\x01 \x03(\v2\".voicenotes.v1.SummarizationPromptR\aprompts2\x83\x05\n" +
	"\x11ProcessingService\x12u\n" +
	"\x16RegisterTranscriptFile\x12,.voicenotes.v1.RegisterTranscriptFileRequest\x1a-.voicenotes.v1.RegisterTranscriptFileResponse\x12o\n" +
	"\x14RunDynamicProcessing\x12*.voicenotes.v1.RunDynamicProcessingRequest\x1a+.voicenotes.v1.RunDynamicProcessingResponse\x12Q\n" +
	"\n" +
	"GetSession\x12 .voicenotes.v1.GetSessionRequest\x1a!.voicenotes.v1.GetSessionResponse\x12o\n" +
	"\x14GetExtractionResults\x12*.voicenotes.v1.GetExtractionResultsRequest\x1a+.voicenotes.v1.GetExtractionResultsResponse\x12f\n" +
	"\x11GetSummarizations\x12'.voicenotes.v1.GetSummarizationsRequest\x1a(.voicenotes.v1.GetSummarizationsResponse\x12Z\n" +
	"\rExportResults\x12#.voicenotes.v1.ExportResultsRequest\x1a$.voicenotes.v1.ExportResultsResponse2\x93\x04\n" +
	"\x10TemplatesService\x12\x81\x01\n" +
	"\x1aCreateExtractionDefinition\x120.voicenotes.v1.CreateExtractionDefinitionRequest\x1a1.voicenotes.v1.CreateExtractionDefinitionResponse\x12~\n" +
	"\x19ListExtractionDefinitions\x12/.voicenotes.v1.ListExtractionDefinitionsRequest\x1a0.voicenotes.v1.ListExtractionDefinitionsResponse\x12~\n" +
	"\x19CreateSummarizationPrompt\x12/.voicenotes.v1.CreateSummarizationPromptRequest\x1a0.voicenotes.v1.CreateSummarizationPromptResponse\x12{\n" +
	"\x18ListSummarizationPrompts\x12..voicenotes.v1.ListSummarizationPromptsRequest\x1a/.voicenotes.v1.ListSummarizationPromptsResponseBIZGgithub.com/jide-alade/voicenotes-tracker/gen/voicenotes/v1;voicenotesv1b\x06proto3"

var (
	file_voicenotes_v1_voicenotes_proto_rawDescOnce sync.Once
	file_voicenotes_v1_voicenotes_proto_rawDescData []byte
)

func file_voicenotes_v1_voicenotes_proto_rawDescGZIP() []byte {
	file_voicenotes_v1_voicenotes_proto_rawDescOnce.Do(func() {
		file_voicenotes_v1_voicenotes_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_voicenotes_v1_voicenotes_proto_rawDesc), len(file_voicenotes_v1_voicenotes_proto_rawDesc)))
	})
	return file_voicenotes_v1_voicenotes_proto_rawDescData
}

var file_voicenotes_v1_voicenotes_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_voicenotes_v1_voicenotes_proto_goTypes = []any{
	(*RegisterTranscriptFileRequest)(nil),      // 0: voicenotes.v1.RegisterTranscriptFileRequest
	(*RegisterTranscriptFileResponse)(nil),     // 1: voicenotes.v1.RegisterTranscriptFileResponse
	(*RunDynamicProcessingRequest)(nil),        // 2: voicenotes.v1.RunDynamicProcessingRequest
	(*RunDynamicProcessingResponse)(nil),       // 3: voicenotes.v1.RunDynamicProcessingResponse
	(*GetSessionRequest)(nil),                  // 4: voicenotes.v1.GetSessionRequest
	(*Session)(nil),                            // 5: voicenotes.v1.Session
	(*GetSessionResponse)(nil),                 // 6: voicenotes.v1.GetSessionResponse
	(*GetExtractionResultsRequest)(nil),        // 7: voicenotes.v1.GetExtractionResultsRequest
	(*ExtractionResult)(nil),                   // 8: voicenotes.v1.ExtractionResult
	(*GetExtractionResultsResponse)(nil),       // 9: voicenotes.v1.GetExtractionResultsResponse
	(*GetSummarizationsRequest)(nil),           // 10: voicenotes.v1.GetSummarizationsRequest
	(*Summarization)(nil),                      // 11: voicenotes.v1.Summarization
	(*GetSummarizationsResponse)(nil),          // 12: voicenotes.v1.GetSummarizationsResponse
	(*ExportResultsRequest)(nil),               // 13: voicenotes.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil),              // 14: voicenotes.v1.ExportResultsResponse
	(*CreateExtractionDefinitionRequest)(nil),  // 15: voicenotes.v1.CreateExtractionDefinitionRequest
	(*ExtractionDefinition)(nil),               // 16: voicenotes.v1.ExtractionDefinition
	(*CreateExtractionDefinitionResponse)(nil), // 17: voicenotes.v1.CreateExtractionDefinitionResponse
	(*ListExtractionDefinitionsRequest)(nil),   // 18: voicenotes.v1.ListExtractionDefinitionsRequest
	(*ListExtractionDefinitionsResponse)(nil),  // 19: voicenotes.v1.ListExtractionDefinitionsResponse
	(*CreateSummarizationPromptRequest)(nil),   // 20: voicenotes.v1.CreateSummarizationPromptRequest
	(*SummarizationPrompt)(nil),                // 21: voicenotes.v1.SummarizationPrompt
	(*CreateSummarizationPromptResponse)(nil),  // 22: voicenotes.v1.CreateSummarizationPromptResponse
	(*ListSummarizationPromptsRequest)(nil),    // 23: voicenotes.v1.ListSummarizationPromptsRequest
	(*ListSummarizationPromptsResponse)(nil),   // 24: voicenotes.v1.ListSummarizationPromptsResponse
}
var file_voicenotes_v1_voicenotes_proto_depIdxs = []int32{
	5,  // 0: voicenotes.v1.GetSessionResponse.session:type_name -> voicenotes.v1.Session
	8,  // 1: voicenotes.v1.GetExtractionResultsResponse.results:type_name -> voicenotes.v1.ExtractionResult
	11, // 2: voicenotes.v1.GetSummarizationsResponse.summarizations:type_name -> voicenotes.v1.Summarization
	16, // 3: voicenotes.v1.CreateExtractionDefinitionResponse.definition:type_name -> voicenotes.v1.ExtractionDefinition
	16, // 4: voicenotes.v1.ListExtractionDefinitionsResponse.definitions:type_name -> voicenotes.v1.ExtractionDefinition
	21, // 5: voicenotes.v1.CreateSummarizationPromptResponse.prompt:type_name -> voicenotes.v1.SummarizationPrompt
	21, // 6: voicenotes.v1.ListSummarizationPromptsResponse.prompts:type_name -> voicenotes.v1.SummarizationPrompt
	0,  // 7: voicenotes.v1.ProcessingService.RegisterTranscriptFile:input_type -> voicenotes.v1.RegisterTranscriptFileRequest
	2,  // 8: voicenotes.v1.ProcessingService.RunDynamicProcessing:input_type -> voicenotes.v1.RunDynamicProcessingRequest
	4,  // 9: voicenotes.v1.ProcessingService.GetSession:input_type -> voicenotes.v1.GetSessionRequest
	7,  // 10: voicenotes.v1.ProcessingService.GetExtractionResults:input_type -> voicenotes.v1.GetExtractionResultsRequest
	10, // 11: voicenotes.v1.ProcessingService.GetSummarizations:input_type -> voicenotes.v1.GetSummarizationsRequest
	13, // 12: voicenotes.v1.ProcessingService.ExportResults:input_type -> voicenotes.v1.ExportResultsRequest
	15, // 13: voicenotes.v1.TemplatesService.CreateExtractionDefinition:input_type -> voicenotes.v1.CreateExtractionDefinitionRequest
	18, // 14: voicenotes.v1.TemplatesService.ListExtractionDefinitions:input_type -> voicenotes.v1.ListExtractionDefinitionsRequest
	20, // 15: voicenotes.v1.TemplatesService.CreateSummarizationPrompt:input_type -> voicenotes.v1.CreateSummarizationPromptRequest
	23, // 16: voicenotes.v1.TemplatesService.ListSummarizationPrompts:input_type -> voicenotes.v1.ListSummarizationPromptsRequest
	1,  // 17: voicenotes.v1.ProcessingService.RegisterTranscriptFile:output_type -> voicenotes.v1.RegisterTranscriptFileResponse
	3,  // 18: voicenotes.v1.ProcessingService.RunDynamicProcessing:output_type -> voicenotes.v1.RunDynamicProcessingResponse
	6,  // 19: voicenotes.v1.ProcessingService.GetSession:output_type -> voicenotes.v1.GetSessionResponse
	9,  // 20: voicenotes.v1.ProcessingService.GetExtractionResults:output_type -> voicenotes.v1.GetExtractionResultsResponse
	12, // 21: voicenotes.v1.ProcessingService.GetSummarizations:output_type -> voicenotes.v1.GetSummarizationsResponse
	14, // 22: voicenotes.v1.ProcessingService.ExportResults:output_type -> voicenotes.v1.ExportResultsResponse
	17, // 23: voicenotes.v1.TemplatesService.CreateExtractionDefinition:output_type -> voicenotes.v1.CreateExtractionDefinitionResponse
	19, // 24: voicenotes.v1.TemplatesService.ListExtractionDefinitions:output_type -> voicenotes.v1.ListExtractionDefinitionsResponse
	22, // 25: voicenotes.v1.TemplatesService.CreateSummarizationPrompt:output_type -> voicenotes.v1.CreateSummarizationPromptResponse
	24, // 26: voicenotes.v1.TemplatesService.ListSummarizationPrompts:output_type -> voicenotes.v1.ListSummarizationPromptsResponse
	17, // [17:27] is the sub-list for method output_type
	7,  // [7:17] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_voicenotes_v1_voicenotes_proto_init() }
func file_voicenotes_v1_voicenotes_proto_init() {
	if File_voicenotes_v1_voicenotes_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_voicenotes_v1_voicenotes_proto_rawDesc), len(file_voicenotes_v1_voicenotes_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_voicenotes_v1_voicenotes_proto_goTypes,
		DependencyIndexes: file_voicenotes_v1_voicenotes_proto_depIdxs,
		MessageInfos:      file_voicenotes_v1_voicenotes_proto_msgTypes,
	}.Build()
	File_voicenotes_v1_voicenotes_proto = out.File
	file_voicenotes_v1_voicenotes_proto_goTypes = nil
	file_voicenotes_v1_voicenotes_proto_depIdxs = nil
}
