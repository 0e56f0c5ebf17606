package milky

import (
	"fmt"
	"strconv"
	"strings"
)

// Scene is the wire protocol's addressing context for a message.
type Scene string

// Message scenes. Friend and temp are both private conversations: friend is
// a persistent direct chat, temp is a transient one opened through a group
// interaction.
const (
	SceneFriend Scene = "friend"
	SceneGroup  Scene = "group"
	SceneTemp   Scene = "temp"
)

// Channel identifier prefixes. Both private scenes share the "private:"
// namespace on the host side; this conflation is part of the adapter's
// public contract and host-side consumers depend on it.
const (
	privatePrefix = "private:"
	tempPrefix    = "private:temp_"
)

// EncodeChannelID maps a (scene, peer) pair to the host-facing channel
// identifier. The mapping is total and reversible via ParseChannelID.
func EncodeChannelID(scene Scene, peerID int64) string {
	switch scene {
	case SceneTemp:
		return tempPrefix + strconv.FormatInt(peerID, 10)
	case SceneFriend:
		return privatePrefix + strconv.FormatInt(peerID, 10)
	default:
		return strconv.FormatInt(peerID, 10)
	}
}

// ParseChannelID maps a host-facing channel identifier back to its
// (scene, peer) pair. The temp prefix must be checked before the bare
// private prefix. A non-numeric peer substring is a caller error and yields
// ErrMalformedChannelID.
func ParseChannelID(channelID string) (Scene, int64, error) {
	scene := SceneGroup
	peer := channelID
	switch {
	case strings.HasPrefix(channelID, tempPrefix):
		scene = SceneTemp
		peer = strings.TrimPrefix(channelID, tempPrefix)
	case strings.HasPrefix(channelID, privatePrefix):
		scene = SceneFriend
		peer = strings.TrimPrefix(channelID, privatePrefix)
	}

	peerID, err := strconv.ParseInt(peer, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedChannelID, channelID)
	}
	return scene, peerID, nil
}

// guildChannelID returns the guild and channel identifiers for a scene/peer
// pair. The guild ID is empty for both private scenes; for the group scene
// it equals the channel ID.
func guildChannelID(scene Scene, peerID int64) (guildID, channelID string) {
	channelID = EncodeChannelID(scene, peerID)
	if scene == SceneGroup {
		guildID = channelID
	}
	return guildID, channelID
}
