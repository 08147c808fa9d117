package repositories

import (
	pb "chat-vault/proto/storage"
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
	"google.golang.org/protobuf/proto"
)

// InspectMapper labels store entries for the debug inspector.
// Message content is never rendered.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	prefix, _, _ := strings.Cut(key, ":")
	row.Type = strings.ToUpper(prefix)

	switch prefix {
	case "conv":
		var c pb.Conversation
		if err := proto.Unmarshal(val, &c); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Detail = fmt.Sprintf("%s, %d participants, active=%t", c.GetKind(), len(c.GetParticipants()), c.GetIsActive())
	case "msg":
		var m pb.Message
		if err := proto.Unmarshal(val, &m); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Detail = fmt.Sprintf("%s from %s, status=%s, locked=%t, codec=%s",
			m.GetType(), m.GetSenderId(), m.GetStatus(), m.GetLocked(), m.GetCodec())
	}
	return row
}
