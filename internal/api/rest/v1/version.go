package v1

// BasePath of all version 1 routes
const BasePath = "/api/v1/tn"
