// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: voicenotes/v1/voicenotes.proto

package voicenotesv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ProcessingService_RegisterTranscriptFile_FullMethodName = "/voicenotes.v1.ProcessingService/RegisterTranscriptFile"
	ProcessingService_RunDynamicProcessing_FullMethodName   = "/voicenotes.v1.ProcessingService/RunDynamicProcessing"
	ProcessingService_GetSession_FullMethodName             = "/voicenotes.v1.ProcessingService/GetSession"
	ProcessingService_GetExtractionResults_FullMethodName   = "/voicenotes.v1.ProcessingService/GetExtractionResults"
	ProcessingService_GetSummarizations_FullMethodName      = "/voicenotes.v1.ProcessingService/GetSummarizations"
	ProcessingService_ExportResults_FullMethodName          = "/voicenotes.v1.ProcessingService/ExportResults"
)

// ProcessingServiceClient is the client API for ProcessingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ProcessingServiceClient interface {
	RegisterTranscriptFile(ctx context.Context, in *RegisterTranscriptFileRequest, opts ...grpc.CallOption) (*RegisterTranscriptFileResponse, error)
	RunDynamicProcessing(ctx context.Context, in *RunDynamicProcessingRequest, opts ...grpc.CallOption) (*RunDynamicProcessingResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	GetExtractionResults(ctx context.Context, in *GetExtractionResultsRequest, opts ...grpc.CallOption) (*GetExtractionResultsResponse, error)
	GetSummarizations(ctx context.Context, in *GetSummarizationsRequest, opts ...grpc.CallOption) (*GetSummarizationsResponse, error)
	ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error)
}

type processingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProcessingServiceClient(cc grpc.ClientConnInterface) ProcessingServiceClient {
	return &processingServiceClient{cc}
}

func (c *processingServiceClient) RegisterTranscriptFile(ctx context.Context, in *RegisterTranscriptFileRequest, opts ...grpc.CallOption) (*RegisterTranscriptFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterTranscriptFileResponse)
	err := c.cc.Invoke(ctx, ProcessingService_RegisterTranscriptFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processingServiceClient) RunDynamicProcessing(ctx context.Context, in *RunDynamicProcessingRequest, opts ...grpc.CallOption) (*RunDynamicProcessingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunDynamicProcessingResponse)
	err := c.cc.Invoke(ctx, ProcessingService_RunDynamicProcessing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processingServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSessionResponse)
	err := c.cc.Invoke(ctx, ProcessingService_GetSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processingServiceClient) GetExtractionResults(ctx context.Context, in *GetExtractionResultsRequest, opts ...grpc.CallOption) (*GetExtractionResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExtractionResultsResponse)
	err := c.cc.Invoke(ctx, ProcessingService_GetExtractionResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processingServiceClient) GetSummarizations(ctx context.Context, in *GetSummarizationsRequest, opts ...grpc.CallOption) (*GetSummarizationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSummarizationsResponse)
	err := c.cc.Invoke(ctx, ProcessingService_GetSummarizations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *processingServiceClient) ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResultsResponse)
	err := c.cc.Invoke(ctx, ProcessingService_ExportResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessingServiceServer is the server API for ProcessingService service.
// All implementations must embed UnimplementedProcessingServiceServer
// for forward compatibility.
type ProcessingServiceServer interface {
	RegisterTranscriptFile(context.Context, *RegisterTranscriptFileRequest) (*RegisterTranscriptFileResponse, error)
	RunDynamicProcessing(context.Context, *RunDynamicProcessingRequest) (*RunDynamicProcessingResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	GetExtractionResults(context.Context, *GetExtractionResultsRequest) (*GetExtractionResultsResponse, error)
	GetSummarizations(context.Context, *GetSummarizationsRequest) (*GetSummarizationsResponse, error)
	ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error)
	mustEmbedUnimplementedProcessingServiceServer()
}

// UnimplementedProcessingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedProcessingServiceServer struct{}

func (UnimplementedProcessingServiceServer) RegisterTranscriptFile(context.Context, *RegisterTranscriptFileRequest) (*RegisterTranscriptFileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterTranscriptFile not implemented")
}
func (UnimplementedProcessingServiceServer) RunDynamicProcessing(context.Context, *RunDynamicProcessingRequest) (*RunDynamicProcessingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunDynamicProcessing not implemented")
}
func (UnimplementedProcessingServiceServer) GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedProcessingServiceServer) GetExtractionResults(context.Context, *GetExtractionResultsRequest) (*GetExtractionResultsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetExtractionResults not implemented")
}
func (UnimplementedProcessingServiceServer) GetSummarizations(context.Context, *GetSummarizationsRequest) (*GetSummarizationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSummarizations not implemented")
}
func (UnimplementedProcessingServiceServer) ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportResults not implemented")
}
func (UnimplementedProcessingServiceServer) mustEmbedUnimplementedProcessingServiceServer() {}
func (UnimplementedProcessingServiceServer) testEmbeddedByValue()                           {}

// UnsafeProcessingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ProcessingServiceServer will
// result in compilation errors.
type UnsafeProcessingServiceServer interface {
	mustEmbedUnimplementedProcessingServiceServer()
}

func RegisterProcessingServiceServer(s grpc.ServiceRegistrar, srv ProcessingServiceServer) {
	// If the following call panics, it indicates UnimplementedProcessingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ProcessingService_ServiceDesc, srv)
}

func _ProcessingService_RegisterTranscriptFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterTranscriptFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).RegisterTranscriptFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_RegisterTranscriptFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).RegisterTranscriptFile(ctx, req.(*RegisterTranscriptFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessingService_RunDynamicProcessing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunDynamicProcessingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).RunDynamicProcessing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_RunDynamicProcessing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).RunDynamicProcessing(ctx, req.(*RunDynamicProcessingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessingService_GetSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_GetSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessingService_GetExtractionResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractionResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).GetExtractionResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_GetExtractionResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).GetExtractionResults(ctx, req.(*GetExtractionResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessingService_GetSummarizations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSummarizationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).GetSummarizations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_GetSummarizations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).GetSummarizations(ctx, req.(*GetSummarizationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ProcessingService_ExportResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessingServiceServer).ExportResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessingService_ExportResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessingServiceServer).ExportResults(ctx, req.(*ExportResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProcessingService_ServiceDesc is the grpc.ServiceDesc for ProcessingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ProcessingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "voicenotes.v1.ProcessingService",
	HandlerType: (*ProcessingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterTranscriptFile",
			Handler:    _ProcessingService_RegisterTranscriptFile_Handler,
		},
		{
			MethodName: "RunDynamicProcessing",
			Handler:    _ProcessingService_RunDynamicProcessing_Handler,
		},
		{
			MethodName: "GetSession",
			Handler:    _ProcessingService_GetSession_Handler,
		},
		{
			MethodName: "GetExtractionResults",
			Handler:    _ProcessingService_GetExtractionResults_Handler,
		},
		{
			MethodName: "GetSummarizations",
			Handler:    _ProcessingService_GetSummarizations_Handler,
		},
		{
			MethodName: "ExportResults",
			Handler:    _ProcessingService_ExportResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "voicenotes/v1/voicenotes.proto",
}

const (
	TemplatesService_CreateExtractionDefinition_FullMethodName = "/voicenotes.v1.TemplatesService/CreateExtractionDefinition"
	TemplatesService_ListExtractionDefinitions_FullMethodName  = "/voicenotes.v1.TemplatesService/ListExtractionDefinitions"
	TemplatesService_CreateSummarizationPrompt_FullMethodName  = "/voicenotes.v1.TemplatesService/CreateSummarizationPrompt"
	TemplatesService_ListSummarizationPrompts_FullMethodName   = "/voicenotes.v1.TemplatesService/ListSummarizationPrompts"
)

// TemplatesServiceClient is the client API for TemplatesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TemplatesServiceClient interface {
	CreateExtractionDefinition(ctx context.Context, in *CreateExtractionDefinitionRequest, opts ...grpc.CallOption) (*CreateExtractionDefinitionResponse, error)
	ListExtractionDefinitions(ctx context.Context, in *ListExtractionDefinitionsRequest, opts ...grpc.CallOption) (*ListExtractionDefinitionsResponse, error)
	CreateSummarizationPrompt(ctx context.Context, in *CreateSummarizationPromptRequest, opts ...grpc.CallOption) (*CreateSummarizationPromptResponse, error)
	ListSummarizationPrompts(ctx context.Context, in *ListSummarizationPromptsRequest, opts ...grpc.CallOption) (*ListSummarizationPromptsResponse, error)
}

type templatesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTemplatesServiceClient(cc grpc.ClientConnInterface) TemplatesServiceClient {
	return &templatesServiceClient{cc}
}

func (c *templatesServiceClient) CreateExtractionDefinition(ctx context.Context, in *CreateExtractionDefinitionRequest, opts ...grpc.CallOption) (*CreateExtractionDefinitionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateExtractionDefinitionResponse)
	err := c.cc.Invoke(ctx, TemplatesService_CreateExtractionDefinition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesServiceClient) ListExtractionDefinitions(ctx context.Context, in *ListExtractionDefinitionsRequest, opts ...grpc.CallOption) (*ListExtractionDefinitionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExtractionDefinitionsResponse)
	err := c.cc.Invoke(ctx, TemplatesService_ListExtractionDefinitions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesServiceClient) CreateSummarizationPrompt(ctx context.Context, in *CreateSummarizationPromptRequest, opts ...grpc.CallOption) (*CreateSummarizationPromptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSummarizationPromptResponse)
	err := c.cc.Invoke(ctx, TemplatesService_CreateSummarizationPrompt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *templatesServiceClient) ListSummarizationPrompts(ctx context.Context, in *ListSummarizationPromptsRequest, opts ...grpc.CallOption) (*ListSummarizationPromptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSummarizationPromptsResponse)
	err := c.cc.Invoke(ctx, TemplatesService_ListSummarizationPrompts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TemplatesServiceServer is the server API for TemplatesService service.
// All implementations must embed UnimplementedTemplatesServiceServer
// for forward compatibility.
type TemplatesServiceServer interface {
	CreateExtractionDefinition(context.Context, *CreateExtractionDefinitionRequest) (*CreateExtractionDefinitionResponse, error)
	ListExtractionDefinitions(context.Context, *ListExtractionDefinitionsRequest) (*ListExtractionDefinitionsResponse, error)
	CreateSummarizationPrompt(context.Context, *CreateSummarizationPromptRequest) (*CreateSummarizationPromptResponse, error)
	ListSummarizationPrompts(context.Context, *ListSummarizationPromptsRequest) (*ListSummarizationPromptsResponse, error)
	mustEmbedUnimplementedTemplatesServiceServer()
}

// UnimplementedTemplatesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTemplatesServiceServer struct{}

func (UnimplementedTemplatesServiceServer) CreateExtractionDefinition(context.Context, *CreateExtractionDefinitionRequest) (*CreateExtractionDefinitionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateExtractionDefinition not implemented")
}
func (UnimplementedTemplatesServiceServer) ListExtractionDefinitions(context.Context, *ListExtractionDefinitionsRequest) (*ListExtractionDefinitionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListExtractionDefinitions not implemented")
}
func (UnimplementedTemplatesServiceServer) CreateSummarizationPrompt(context.Context, *CreateSummarizationPromptRequest) (*CreateSummarizationPromptResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSummarizationPrompt not implemented")
}
func (UnimplementedTemplatesServiceServer) ListSummarizationPrompts(context.Context, *ListSummarizationPromptsRequest) (*ListSummarizationPromptsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSummarizationPrompts not implemented")
}
func (UnimplementedTemplatesServiceServer) mustEmbedUnimplementedTemplatesServiceServer() {}
func (UnimplementedTemplatesServiceServer) testEmbeddedByValue()                          {}

// UnsafeTemplatesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TemplatesServiceServer will
// result in compilation errors.
type UnsafeTemplatesServiceServer interface {
	mustEmbedUnimplementedTemplatesServiceServer()
}

func RegisterTemplatesServiceServer(s grpc.ServiceRegistrar, srv TemplatesServiceServer) {
	// If the following call panics, it indicates UnimplementedTemplatesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TemplatesService_ServiceDesc, srv)
}

func _TemplatesService_CreateExtractionDefinition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateExtractionDefinitionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServiceServer).CreateExtractionDefinition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TemplatesService_CreateExtractionDefinition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TemplatesServiceServer).CreateExtractionDefinition(ctx, req.(*CreateExtractionDefinitionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TemplatesService_ListExtractionDefinitions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExtractionDefinitionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServiceServer).ListExtractionDefinitions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TemplatesService_ListExtractionDefinitions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TemplatesServiceServer).ListExtractionDefinitions(ctx, req.(*ListExtractionDefinitionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TemplatesService_CreateSummarizationPrompt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSummarizationPromptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServiceServer).CreateSummarizationPrompt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TemplatesService_CreateSummarizationPrompt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TemplatesServiceServer).CreateSummarizationPrompt(ctx, req.(*CreateSummarizationPromptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TemplatesService_ListSummarizationPrompts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSummarizationPromptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TemplatesServiceServer).ListSummarizationPrompts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TemplatesService_ListSummarizationPrompts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TemplatesServiceServer).ListSummarizationPrompts(ctx, req.(*ListSummarizationPromptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TemplatesService_ServiceDesc is the grpc.ServiceDesc for TemplatesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TemplatesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "voicenotes.v1.TemplatesService",
	HandlerType: (*TemplatesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateExtractionDefinition",
			Handler:    _TemplatesService_CreateExtractionDefinition_Handler,
		},
		{
			MethodName: "ListExtractionDefinitions",
			Handler:    _TemplatesService_ListExtractionDefinitions_Handler,
		},
		{
			MethodName: "CreateSummarizationPrompt",
			Handler:    _TemplatesService_CreateSummarizationPrompt_Handler,
		},
		{
			MethodName: "ListSummarizationPrompts",
			Handler:    _TemplatesService_ListSummarizationPrompts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "voicenotes/v1/voicenotes.proto",
}
