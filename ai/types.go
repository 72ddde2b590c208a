package ai

// EmptySummary is returned by summarizers for documents with no extractable
// text.
const EmptySummary = "No content available."

// MaxCategories is the maximum number of classifications returned per text.
const MaxCategories = 3

// CategoryLabels defines the valid topic labels for document classification.
var CategoryLabels = []string{
	"business",
	"education",
	"engineering",
	"finance",
	"government",
	"health",
	"human resources",
	"legal",
	"marketing",
	"science",
	"technology",
	"other",
}
