package streamecho

import (
	"context"

	"github.com/jhump/streamecho/streamingpb"
)

// Responder computes the response for one request received on a call. An
// error returned from a Responder is sent to the client as the final status
// of the call.
type Responder func(ctx context.Context, req *streamingpb.EchoRequest) (*streamingpb.EchoResponse, error)

// FixedResponder is the default Responder. It ignores the content of the
// request and always answers with the same list of people.
func FixedResponder(_ context.Context, _ *streamingpb.EchoRequest) (*streamingpb.EchoResponse, error) {
	return &streamingpb.EchoResponse{Person: People()}, nil
}

// People returns a new copy of the list of people sent by FixedResponder.
func People() []*streamingpb.Person {
	return []*streamingpb.Person{
		{Name: "John", Age: 12},
		{Name: "Bob", Age: 23},
		{Name: "Alex", Age: 33},
		{Name: "Miranda", Age: 56},
	}
}
