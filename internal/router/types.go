package router

// #region tool

// Tool identifies a capability provider the agent can call.
type Tool string

const (
	ToolNone       Tool = ""
	ToolRAG        Tool = "rag"
	ToolSQL        Tool = "sql"
	ToolCalculator Tool = "calculator"
	ToolWeb        Tool = "web"
)

// #endregion
