// Package streamecho provides a client driver and a server handler for the
// bidirectional streaming Echo RPC: a client opens a duplex stream, sends a
// sequence of requests and concurrently receives responses over the same
// call, until either side closes its half of the stream.
//
// On the server, each call is handled by exactly one background goroutine
// that consumes the inbound half and feeds a small bounded buffer. The RPC
// handler drains that buffer onto the outbound half. The buffer is the only
// point of synchronization between the two directions, and its capacity is
// what applies backpressure to a client that reads slower than it writes.
//
// On the client, RunBidiEcho (or StartCall and Call.Run) sends a generated
// sequence of requests while handing each response to a callback as soon as
// it arrives.
package streamecho
