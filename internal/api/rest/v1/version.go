package v1

// BasePath is the prefix of all version 1 routes
const BasePath = "/api/v1/cf"
