// Package connector implements registrar.Connector for the CentralNic
// Reseller (RRPproxy) command API and the Netim REST API.
package connector
