package models

const (
	// RejectionLiteral is the exact string returned for out-of-domain
	// questions, both by the admission gate and by the model itself when
	// the enriched prompt is judged non-legal.
	RejectionLiteral = "NON valid prompt"

	// Perspective markers as the system prompt instructs the model to emit them.
	PerspectiveMarker = "Perspective"
	OffenderLabel     = "1: Offender"
	VictimLabel       = "2: Victim"
	OffenderHeading   = "Perspective 1: Offender"
	VictimHeading     = "Perspective 2: Victim"

	// Placeholders substituted when a perspective stays empty after parsing.
	OffenderPlaceholder = "Perspective 1: Offender\nAnalysis not available for this query."
	VictimPlaceholder   = "Perspective 2: Victim\nAnalysis not available for this query."

	// ProbePrompt is the liveness probe sent to each backend candidate
	// during model selection.
	ProbePrompt = "Hello"
)

// SystemPrompt constrains the model to the two-perspective 5-line format
// and to collapsing non-legal answers to the rejection literal.
const SystemPrompt = `You are a legal AI assistant providing structured, concise analysis of legal scenarios.

SCOPE RESTRICTION:
- ONLY answer questions related to the LEGAL sector (law, legal advice, legal procedures, court cases, legal rights, etc.)
- If the user asks anything unrelated to legal matters, respond EXACTLY with: "NON valid prompt"
- Do NOT provide the structured 2-perspective format for non-legal queries
- Do NOT provide any non-legal information or general knowledge
- For non-legal questions, return ONLY the single message "NON valid prompt" with no additional text

INFORMATION SOURCES:
- First, search the provided context for relevant legal information
- If the requested information is NOT found in the context, use your general legal knowledge and current legal understanding
- For recent legal developments or specific cases not in the context, provide the most accurate legal information available
- Always prioritize accuracy and current legal standards

CRITICAL REQUIREMENTS FOR LEGAL QUERIES ONLY:
- Provide EXACTLY 5 lines of analysis for each perspective
- Each line must be EXACTLY 1 sentence (no more)
- Do NOT use markdown formatting or asterisks
- Be extremely concise and direct
- Use plain text only

FORMAT (EXACTLY 5 LINES PER PERSPECTIVE):

Perspective 1: Offender
1. Legal Status: [Yes/No] - [Single sentence about legal liability]
2. Under Which Law: [Specific law/section in one sentence]
3. Punishment: [Brief punishment description in one sentence]
4. Reasoning: [Single sentence legal reasoning]
5. Next Steps:
 - [Exactly 4 bullet points with actionable legal steps]
 - [Each bullet point maximum 10-15 words]
 - [Focus on practical legal actions]
 - [Include filing complaints, seeking orders, etc.]

Perspective 2: Victim
1. Legal Protection: [Yes/No] - [Single sentence about available protection]
2. Under Which Law: [Specific law/section in one sentence]
3. Remedies Available: [Brief remedies description in one sentence]
4. Reasoning: [Single sentence legal reasoning]
5. Next Steps:
 - [Exactly 4 bullet points with actionable legal steps]
 - [Each bullet point maximum 10-15 words]
 - [Focus on practical legal actions]
 - [Include filing complaints, seeking orders, etc.]

IMPORTANT: Keep responses concise, practical, focused on actionable legal guidance, and use NO markdown formatting.`

// ClassificationPromptTemplate asks the backend for a strict YES/NO verdict
// on whether a question is in the legal domain.
const ClassificationPromptTemplate = `You are a legal query classifier. Determine if the following question is related to LEGAL matters.

LEGAL topics include: law, legal rights, legal procedures, court cases, contracts, regulations, statutes, legal advice, criminal law, civil law, legal disputes, legal documentation, legal obligations, legal consequences, legal protections, legal remedies, legal processes, lawsuits, legal compliance, etc.

NON-LEGAL topics include: cooking, recipes, food, weather, sports, entertainment, movies, music, technology (non-legal aspects), general knowledge, health (non-malpractice), education (non-legal aspects), shopping, travel, etc.

Question: "%s"

Respond with ONLY one word - either "YES" if this is a legal query, or "NO" if it is not legal.
Do not provide any explanation, just YES or NO.`

// ReferenceCorpus is the embedded fallback corpus used when no document
// source is present, so the service stays queryable in a degraded mode.
const ReferenceCorpus = `Indian Penal Code and Criminal Procedure Code:

Section 154 CrPC - Information in cognizable cases
Section 173 CrPC - Report of police officer on completion of investigation
Section 354C IPC - Voyeurism
Section 228A IPC - Disclosure of identity of the victim of certain offences
Section 66E IT Act - Violation of privacy
Section 67 IT Act - Punishment for publishing or transmitting obscene material

Basic Legal Procedures:
1. Filing FIR for cognizable offences
2. Seeking anticipatory bail
3. Filing civil suit for damages
4. Seeking restraining orders
5. Approaching cybercrime cells for online offences`

// ReferenceCorpusSource is the document identifier attached to chunks
// produced from the embedded reference corpus.
const ReferenceCorpusSource = "legal_knowledge_base"
