package version

// Version is the apfid CLI version. It is overridden at build time with
// -ldflags "-X github.com/hashicorp-forge/apfid/internal/version.Version=...".
var Version = "0.1.0"
