// Package proto holds the protobuf schemas of the store records and of the gRPC API.
package proto

//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative ../proto/storage/storage.proto ../proto/chat/chat.proto
