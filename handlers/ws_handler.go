package handlers

import (
	"errors"
	"fmt"
	"log"

	config "github.com/anjiri1684/tutor_marketplace/configs"
	"github.com/anjiri1684/tutor_marketplace/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ServeBookingFeed upgrades the connection and streams booking status
// events to the authenticated participant. The first client message
// must carry the JWT, since browsers cannot set headers on a websocket
// handshake.
func ServeBookingFeed(c *websocketcontrib.Conn) {
	defer c.Close()

	var authMsg struct {
		Token string `json:"token"`
	}
	if err := c.ReadJSON(&authMsg); err != nil {
		log.Printf("Booking feed auth read failed: %v", err)
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		log.Printf("Booking feed auth failed: %v", err)
		_ = c.WriteJSON(map[string]string{"error": "Invalid token"})
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(map[string]string{"error": "Invalid token"})
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
	}()

	// The feed is one-way; drain the connection until the client hangs up.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				return
			}
			return
		}
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
