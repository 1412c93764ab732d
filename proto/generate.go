// Package proto holds the gRPC contract with the LLM sidecar. Run
// `go generate ./proto` after editing llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
