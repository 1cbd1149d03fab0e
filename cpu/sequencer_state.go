package cpu

// SequencerState is one state of the per-tick fetch/decode/execute
// machine (§4.5).
type SequencerState uint8

const (
	StateFetch SequencerState = iota
	StateWaitInstruction
	StateDecode
	StateWaitOperand
	StateFetchAddrLow
	StateProcessAddrLow
	StateFetchAddrHigh
	StateProcessAddrHigh
	StateFetchIndirectHigh
	StateProcessIndirectHigh
	StateExecute
	StateWaitALU
)
