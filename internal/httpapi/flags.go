package httpapi

// Feature flags gating the legacy read endpoints. v3 is the unconditionally
// enabled version and has no flag.
const (
	FlagUseV1ProductAPI = "UseV1ProductApi"
	FlagUseV2ProductAPI = "UseV2ProductApi"
)
