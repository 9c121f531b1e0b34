// Package streamingpb contains generated code corresponding to the Protocol
// Buffer definition of the streaming echo service.
package streamingpb

//go:generate bash -c "cd ../proto && buf generate"
