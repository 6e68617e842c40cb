package socket

import (
	"context"
	"log"

	"featur_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server for live conversation
// subscriptions. Clients join a room per conversation; every dispatched
// message triggers a re-delivery of the full ordered message list to the room,
// so subscribers treat each callback as a replace-whole-view snapshot.
func NewSocketServer(chatService *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		conversationID := data["conversationId"]
		if conversationID == "" {
			log.Println("❌ Invalid conversationId in join request")
			return
		}
		c.Join(conversationID)
		log.Printf("👥 Socket %s joined conversation %s", c.ID(), conversationID)

		// Deliver the current snapshot so a fresh subscriber starts in sync.
		messages, err := chatService.GetMessageSnapshot(context.Background(), conversationID)
		if err != nil {
			log.Printf("⚠️ Failed to load snapshot for %s: %v", conversationID, err)
			return
		}
		c.Emit("messages", messages)
	})

	server.OnEvent("/", "sendMessage", func(c socketio.Conn, data map[string]string) {
		conversationID := data["conversationId"]
		if conversationID == "" {
			log.Println("❌ Invalid conversationId in sendMessage request")
			return
		}

		ctx := context.Background()
		if _, err := chatService.SendMessage(ctx, conversationID, data["senderId"], data["receiverId"], data["content"]); err != nil {
			log.Printf("❌ Failed to dispatch socket message: %v", err)
			return
		}

		messages, err := chatService.GetMessageSnapshot(ctx, conversationID)
		if err != nil {
			log.Printf("⚠️ Failed to load snapshot for %s: %v", conversationID, err)
			return
		}
		server.BroadcastToRoom("/", conversationID, "messages", messages)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}
