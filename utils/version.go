package utils

// REVISION is reported in every API envelope so client builds can be
// matched against server deployments.
const REVISION = "0.3.1"
