package aicontent

type Question struct {
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type QuestionRequest struct {
	Subject    string `json:"subject" validate:"required"`
	Grade      string `json:"grade"`
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
	Language   string `json:"language"`
	Context    string `json:"context"`
}

type LessonSection struct {
	Heading  string `json:"heading"`
	Body     string `json:"body"`
	Duration string `json:"duration,omitempty"`
}

type LessonPlan struct {
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`
	Grade      string          `json:"grade"`
	Objectives []string        `json:"objectives"`
	Sections   []LessonSection `json:"sections"`
	Homework   string          `json:"homework,omitempty"`
}

type LessonPlanRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Grade    string `json:"grade"`
	Topic    string `json:"topic" validate:"required"`
	Duration string `json:"duration"`
	Language string `json:"language"`
}

type WorksheetExercise struct {
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
}

type Worksheet struct {
	Title     string              `json:"title"`
	Subject   string              `json:"subject"`
	Grade     string              `json:"grade"`
	Exercises []WorksheetExercise `json:"exercises"`
}

type WorksheetRequest struct {
	Subject       string `json:"subject" validate:"required"`
	Grade         string `json:"grade"`
	Topic         string `json:"topic" validate:"required"`
	ExerciseCount int    `json:"exercise_count"`
	Language      string `json:"language"`
}

type SummaryRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
