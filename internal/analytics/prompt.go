package analytics

const AnalyzeBitcoinFlowDescription = "Prompt to analyze Bitcoin funds flow and network health from UTXO and block data."

const AnalyzeBitcoinFlowPrompt = "Analyze the provided Bitcoin UTXO and block data:\n" +
	"- What do the UTXO distributions indicate about funds flow?\n" +
	"- How does the block statistics reflect network health (e.g., transaction volume, congestion)?\n" +
	"- Provide insights on potential market impacts or trends."
