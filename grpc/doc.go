// Package grpc provides OpenTelemetry instrumentation for the gRPC clients
// and servers of an application traced with arizeotel.
//
// # gRPC Server
//
//	server := grpc.NewServer(
//	    grpc.StatsHandler(arizegrpc.ServerHandler()),
//	)
//
// # gRPC Client
//
//	conn, err := grpc.NewClient(target,
//	    grpc.WithStatsHandler(arizegrpc.ClientHandler()),
//	)
//
// Handlers use the provider installed by arizeotel.Register unless providers
// are passed explicitly.
package grpc
