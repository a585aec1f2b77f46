package server

//go:generate swag init -g internal/server/server.go -d ../.. -o ../../docs

// @title TrustLens API
// @version 0.1
// @description Interactive documentation for the TrustLens site inspection API.
// @BasePath /
