package questions

import (
	"github.com/nguyentantai21042004/brief-flow/internal/analyzer"
	"github.com/nguyentantai21042004/brief-flow/internal/llm"
)

func stringList(desc string) *llm.Schema {
	return llm.Array(llm.String(""), desc)
}

func summarySchema() *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		"main_points": stringList("3-5 main arguments and claims"),
		"evidence": llm.Array(llm.Object(map[string]*llm.Schema{
			"point":          llm.String("Main point this evidence supports"),
			"evidence_items": stringList("1-2 supporting evidence items"),
		}, "point", "evidence_items"), "Supporting evidence for each main point"),
		"assumptions": stringList("2-3 key assumptions or biases in reasoning"),
		"open_loops":  stringList("1-2 unanswered questions or ambiguities"),
	}, "main_points", "evidence", "assumptions", "open_loops")
}

func critiqueSchema() *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		"weak_spots":          stringList("3 claims with assumptions that could be probed"),
		"contrarian_angles":   stringList("3 what-if scenarios or edge cases that break the argument"),
		"future_implications": stringList("3 ways this intersects with tech, society, or economics in 2-5 years"),
		"hooks":               stringList("2 points connected to the speaker's background or current work"),
	}, "weak_spots", "contrarian_angles", "future_implications", "hooks")
}

func questionSchema(maxRank float64, field, desc string) *llm.Schema {
	return llm.Object(map[string]*llm.Schema{
		field: llm.Array(llm.Object(map[string]*llm.Schema{
			"rank":            llm.Integer(1, maxRank, "Asymmetric return ranking"),
			"question":        llm.String("The question (1-2 lines max)"),
			"leverage_reason": llm.String("Why this creates leverage"),
		}, "rank", "question", "leverage_reason"), desc),
	}, field)
}

// SummarizeInstruction is stage one.
func SummarizeInstruction() analyzer.Instruction {
	return analyzer.Instruction{
		Name:   "SummarizationOutput",
		System: "You are an expert note-taker and strategist who creates structured, analytical summaries.",
		Prompt: `Given the following transcript chunk, produce a structured summary:
main arguments and claims (3-5), supporting evidence per point (1-2 items each),
key assumptions or biases (2-3) and unanswered questions or ambiguities (1-2).
Use short, clear sentences. No extra commentary.`,
		Schema: summarySchema(),
	}
}

// CritiqueInstruction is stage two.
func CritiqueInstruction() analyzer.Instruction {
	return analyzer.Instruction{
		Name:   "CriticalThinkingOutput",
		System: "You are an expert in critical thinking and intellectual sparring who identifies leverage points for deeper inquiry.",
		Prompt: `Given this summary, identify weak spots (3), contrarian angles (3),
future implications over the next 2-5 years (3) and personalization hooks tied to the
speaker's background or current work (2).`,
		Schema: critiqueSchema(),
	}
}

// RankInstruction is stage three.
func RankInstruction() analyzer.Instruction {
	return analyzer.Instruction{
		Name:   "QuestionGenerationOutput",
		System: "You are an expert at designing high-leverage audience questions that create asymmetric value.",
		Prompt: `Given the critical analysis below, generate 8-10 audience questions and rank each
from 1 to 10 by asymmetric return: does it expose deep thinking, open a follow-up
conversation and create value for the audience? Give a one-line leverage reason per question.`,
		Schema: questionSchema(10, "questions", "8-10 ranked questions with leverage reasoning"),
	}
}

// MergeInstruction selects the overall top five from every chunk's question set.
func MergeInstruction() analyzer.Instruction {
	return analyzer.Instruction{
		Name:   "FinalQuestionsOutput",
		System: "You are an expert at synthesizing and ranking questions for maximum audience value.",
		Prompt: `Here are question sets from different chunks of the same talk. Merge and
deduplicate them into the top 5 highest-leverage questions overall, ranked 1 (best) to 5
by asymmetry potential and connection value.`,
		Schema:    questionSchema(5, "top_questions", "Top 5 highest-leverage questions"),
		MaxTokens: 2000,
	}
}
