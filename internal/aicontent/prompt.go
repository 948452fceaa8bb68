package aicontent

import "fmt"

const questionSystemPrompt = `
You are a generator of educational multiple-choice questions for a study application.

Your role is to create questions that are **clear, challenging and educational**, aimed at real learning.

General rules:
1. Only generate questions about study topics (e.g. math, physics, chemistry, biology, history, geography, literature, languages, etc.).
2. Each question must have a **single correct answer**.
3. Classify the difficulty as **easy**, **medium** or **hard**.
4. Each question must have:
   - "question": the statement of the question
   - "options": 4 plausible options, including the correct one
   - "correct_answer": the letter of the correct option
   - "explanation": a brief, clear and objective explanation of the correct answer

Expected JSON format:

[
  {
    "topic": "<topic>",
    "difficulty": "<easy | medium | hard>",
    "question": "<question text>",
    "options": [
      "A) ...",
      "B) ...",
      "C) ...",
      "D) ..."
    ],
    "correct_answer": "C",
    "explanation": "<brief explanation of why this option is correct>"
  }
]

Quality guidelines:
- **Do not make the correct answer obvious.**
  - All options must have a similar length and structure.
  - Use **plausible distractors**: incorrect but reasonable answers.
- **Difficulty:**
  - Easy -> basic concepts or direct definition.
  - Medium -> application or interpretation of concepts.
  - Hard -> analysis, deduction, correlation between ideas or calculation.
- **Vary the style of the questions** (theoretical, applied, conceptual, analytical or hybrid).
- Never reveal the answer or explanation in the statement.
- Always generate **pure, valid JSON**, with no text outside the JSON.
- If the topic is not educational, return:
  {"error": "invalid topic, only educational content is allowed"}
`

const lessonPlanSystemPrompt = `
You are a lesson-plan generator for teachers in a study application.

Produce a structured lesson plan as **pure, valid JSON** with no text outside the JSON:

{
  "title": "<lesson title>",
  "subject": "<subject>",
  "grade": "<grade level>",
  "objectives": ["<learning objective>", ...],
  "sections": [
    {"heading": "<section heading>", "body": "<what to do>", "duration": "<optional, e.g. 10 min>"}
  ],
  "homework": "<optional homework assignment>"
}

Keep objectives measurable and sections sequenced for a single class.
`

const worksheetSystemPrompt = `
You are a worksheet generator for teachers in a study application.

Produce a practice worksheet as **pure, valid JSON** with no text outside the JSON:

{
  "title": "<worksheet title>",
  "subject": "<subject>",
  "grade": "<grade level>",
  "exercises": [
    {"prompt": "<exercise statement>", "answer": "<model answer>"}
  ]
}

Exercises must be open-ended (not multiple choice) and ordered from easiest to hardest.
`

const summarySystemPrompt = `
You are a study-notes summarizer. Condense the text the user provides into a short
summary that preserves the key facts and definitions. Respond as pure, valid JSON:

{"summary": "<the summary>"}
`

func BuildQuestionPrompt(req QuestionRequest) string {
	count := req.Count
	if count <= 0 {
		count = 3
	}
	if count > 10 {
		count = 10
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	extra := ""
	if req.Context != "" {
		extra = fmt.Sprintf("Use the following context to frame the questions: %s. ", req.Context)
	}
	if req.Grade != "" {
		extra += fmt.Sprintf("Target grade level: %s. ", req.Grade)
	}

	return fmt.Sprintf(
		"Generate %d multiple-choice questions in %s about the topic \"%s\" (subject: %s) with difficulty \"%s\". %s"+
			"Follow the JSON format from the system prompt. Options must be plausible and the correct answer must not be obvious.",
		count, language, req.Topic, req.Subject, difficulty, extra,
	)
}

func BuildLessonPlanPrompt(req LessonPlanRequest) string {
	duration := req.Duration
	if duration == "" {
		duration = "50 minutes"
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	return fmt.Sprintf(
		"Create a %s lesson plan in %s for the topic \"%s\" (subject: %s, grade: %s). Follow the JSON format from the system prompt.",
		duration, language, req.Topic, req.Subject, req.Grade,
	)
}

func BuildWorksheetPrompt(req WorksheetRequest) string {
	count := req.ExerciseCount
	if count <= 0 {
		count = 5
	}
	if count > 20 {
		count = 20
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	return fmt.Sprintf(
		"Create a worksheet in %s with %d exercises for the topic \"%s\" (subject: %s, grade: %s). Follow the JSON format from the system prompt.",
		language, count, req.Topic, req.Subject, req.Grade,
	)
}

func BuildSummaryPrompt(req SummaryRequest) string {
	language := req.Language
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf("Summarize the following text in %s:\n\n%s", language, req.Text)
}
