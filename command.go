// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stompframe

// Command is one of the 15 verbs a frame's command line may carry. Parsing
// is exact-match and case-sensitive, after trimming surrounding
// whitespace; there is no normalization beyond that.
type Command uint8

const (
	CmdConnect Command = iota + 1
	CmdStomp
	CmdConnected
	CmdSend
	CmdSubscribe
	CmdUnsubscribe
	CmdAck
	CmdNack
	CmdBegin
	CmdCommit
	CmdAbort
	CmdDisconnect
	CmdMessage
	CmdReceipt
	CmdError
)

var commandNames = map[Command]string{
	CmdConnect:     "CONNECT",
	CmdStomp:       "STOMP",
	CmdConnected:   "CONNECTED",
	CmdSend:        "SEND",
	CmdSubscribe:   "SUBSCRIBE",
	CmdUnsubscribe: "UNSUBSCRIBE",
	CmdAck:         "ACK",
	CmdNack:        "NACK",
	CmdBegin:       "BEGIN",
	CmdCommit:      "COMMIT",
	CmdAbort:       "ABORT",
	CmdDisconnect:  "DISCONNECT",
	CmdMessage:     "MESSAGE",
	CmdReceipt:     "RECEIPT",
	CmdError:       "ERROR",
}

var commandValues = buildCommandValues()

func buildCommandValues() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, s := range commandNames {
		m[s] = c
	}
	return m
}

// String returns the command's canonical wire spelling.
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "INVALID"
}

// ParseCommand parses s as a canonical command spelling. Unlike the rest of
// the frame grammar, s is not trimmed here; callers (the command-line
// reader) trim surrounding whitespace first.
func ParseCommand(s string) (Command, bool) {
	c, ok := commandValues[s]
	return c, ok
}
