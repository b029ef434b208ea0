package structs

// Stage names one discrete step of the deployment bootstrap pipeline.
//
// We use this on StageResult structs so callers (and the deploy history
// table) can pin exactly which step an outcome belongs to.
type Stage string

const (
	// StageDependencies resolves & installs the production dependency set.
	StageDependencies Stage = "Dependencies"

	// StageStatic collects static assets into the serving location.
	StageStatic Stage = "StaticAssets"

	// StageMigrate applies pending database schema migrations.
	StageMigrate Stage = "Migrate"

	// StageSuperuser provisions the optional admin account.
	StageSuperuser Stage = "Superuser"
)
