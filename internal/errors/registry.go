package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Project errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryProject,
		Message:  "Not a Flutter project",
		Detail:   "No pubspec.yaml with a flutter: entry was found in the working directory.",
	},
	"E002": {
		Category: CategoryProject,
		Message:  "Package name missing from pubspec.yaml",
		Detail:   "pubspec.yaml must declare a name: entry; it becomes the package prefix of generated imports.",
	},
	"E003": {
		Category: CategoryProject,
		Message:  "Project already initialized",
		Detail:   "The route registry file already exists.",
	},

	// ============================================
	// Usage errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryUsage,
		Message:  "Missing resource path argument",
		Detail:   "Generation commands take a /-delimited resource path, e.g. Booking/Flight.",
	},
	"E011": {
		Category: CategoryUsage,
		Message:  "Unknown command",
	},

	// ============================================
	// Conflict errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryConflict,
		Message:  "One or more target files already exist",
	},
	"E021": {
		Category: CategoryConflict,
		Message:  "Route is already registered",
	},

	// ============================================
	// Registry errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryRegistry,
		Message:  "Route registry file not found",
		Detail:   "Generated pages are registered in the shared route registry.",
	},
	"E031": {
		Category: CategoryRegistry,
		Message:  "Route list assignment not found in registry",
		Detail:   "The registry file must contain a 'routes = [ ... ];' or 'routes = <GetPage>[ ... ];' assignment.",
	},

	// ============================================
	// Filesystem errors (E040-E049)
	// ============================================

	"E040": {
		Category: CategoryIO,
		Message:  "Filesystem operation failed",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
