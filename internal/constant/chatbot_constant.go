package constant

// Fixed replies returned without invoking the generator.
const (
	ResetPhrase = "reset history"

	ResetConfirmationMessage = "Chat history has been successfully reset. You can now start a new inquiry."

	ComponentsUnavailableMessage = "Chat system is currently unavailable due to failed initialization of LLM/DB components. Please check server logs."

	MissingQuestionMessage = "Please provide a question."

	ProfileErrorMessage = "An error occurred while retrieving your profile details. Please try again."
	GeneralErrorMessage = "An error occurred during general chat processing. Please try again."
	AnswerErrorMessage  = "An error occurred during the knowledge retrieval process. Please try again."

	// %s: primary drug name
	NoInformationMessage = "Found drug **%s**, but I couldn't find any relevant information in the knowledge base. " +
		"I cannot provide a specific answer based on the drug information available in my database, but I strongly recommend consulting a healthcare professional."
)

// Conversation line prefixes used when history is rendered or parsed.
const (
	HistoryUserPrefix = "User: "
	HistoryAIPrefix   = "AI: "
)

// Profile rendering sentinels.
const (
	UserDetailsNotFound = "User details not found or minimal. No profile data available."
	UserDetailsEmpty    = "User profile exists, but contains no current health or personal details."
	DefaultDataType     = "details"
	DataTypePlaceholder = "[data_type]"
)

// Interaction block text.
const (
	InteractionMissingDescription = "NO DESCRIPTION: Interaction is marked but details are missing."

	// %s primary name, %s primary id, %s secondary name, %s secondary id, %s description
	InteractionWarningTemplate = "!!! MANDATORY INTERACTION WARNING !!!\n" +
		"--- CRITICAL FINDING: DIRECT DRUG INTERACTION IDENTIFIED ---\n" +
		"*** PRIMARY INTERACTOR ***: **%s** (ID: %s)\n" +
		"*** SECONDARY INTERACTOR ***: **%s** (ID: %s)\n" +
		"*** CLINICAL SIGNIFICANCE & DETAILS ***:\n%s\n" +
		"--- END CRITICAL FINDING ---\n\n"

	// %s primary name, %s secondary name
	InteractionSourceTemplate = "Structured Interaction Data for %s vs %s"
)

// Citation block appended to grounded answers.
const (
	CitationRuleWidth   = 40
	CitationTitle       = "✨ **Sources from Local DrugBank Database** ✨"
	CitationPrimary     = "**Primary Drug:** %s (ID: %s)"
	CitationSecondary   = "**Secondary Drug:** %s (ID: %s)"
	CitationSourcesHead = "Relevant Data Chunks Used (Vector ID or Interaction Source):"
)
