package milky

import "context"

// Output shapes for actions that return data. Actions whose data payload is
// an empty object use call[struct{}] directly.

// LoginInfo is the bot account identity.
type LoginInfo struct {
	UIN      int64  `json:"uin"`
	Nickname string `json:"nickname"`
}

// ImplInfo describes the protocol implementation serving the endpoint.
type ImplInfo struct {
	ImplName     string `json:"impl_name"`
	ImplVersion  string `json:"impl_version"`
	QQVersion    string `json:"qq_version"`
	MilkyVersion string `json:"milky_version"`
}

// UserProfile is a user's public profile.
type UserProfile struct {
	Nickname string `json:"nickname"`
	QID      string `json:"qid,omitempty"`
	Age      int    `json:"age,omitempty"`
	Sex      string `json:"sex,omitempty"`
	Remark   string `json:"remark,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Country  string `json:"country,omitempty"`
	City     string `json:"city,omitempty"`
	School   string `json:"school,omitempty"`
}

// FriendListOutput is the get_friend_list payload.
type FriendListOutput struct {
	Friends []Friend `json:"friends"`
}

// FriendInfoOutput is the get_friend_info payload.
type FriendInfoOutput struct {
	Friend Friend `json:"friend"`
}

// GroupListOutput is the get_group_list payload.
type GroupListOutput struct {
	Groups []Group `json:"groups"`
}

// GroupInfoOutput is the get_group_info payload.
type GroupInfoOutput struct {
	Group Group `json:"group"`
}

// GroupMemberListOutput is the get_group_member_list payload.
type GroupMemberListOutput struct {
	Members []GroupMember `json:"members"`
}

// GroupMemberInfoOutput is the get_group_member_info payload.
type GroupMemberInfoOutput struct {
	Member GroupMember `json:"member"`
}

// CookiesOutput is the get_cookies payload.
type CookiesOutput struct {
	Cookies string `json:"cookies"`
}

// CSRFTokenOutput is the get_csrf_token payload.
type CSRFTokenOutput struct {
	CSRFToken string `json:"csrf_token"`
}

// SendMessageOutput is returned by both send_private_message and
// send_group_message.
type SendMessageOutput struct {
	MessageSeq int64 `json:"message_seq"`
	Time       int64 `json:"time"`
	ClientSeq  int64 `json:"client_seq,omitempty"`
}

// MessageOutput is the get_message payload.
type MessageOutput struct {
	Message IncomingMessage `json:"message"`
}

// HistoryMessagesOutput is the get_history_messages payload.
type HistoryMessagesOutput struct {
	Messages       []IncomingMessage `json:"messages"`
	NextMessageSeq int64             `json:"next_message_seq,omitempty"`
}

// ResourceTempURLOutput is the get_resource_temp_url payload.
type ResourceTempURLOutput struct {
	URL string `json:"url"`
}

// ForwardedMessagesOutput is the get_forwarded_messages payload.
type ForwardedMessagesOutput struct {
	Messages []IncomingMessage `json:"messages"`
}

// FriendRequest is one entry of the pending friend request list.
type FriendRequest struct {
	Time         int64  `json:"time"`
	InitiatorID  int64  `json:"initiator_id"`
	InitiatorUID string `json:"initiator_uid"`
	State        string `json:"state"`
	Comment      string `json:"comment,omitempty"`
	Via          string `json:"via,omitempty"`
	IsFiltered   bool   `json:"is_filtered"`
}

// FriendRequestsOutput is the get_friend_requests payload.
type FriendRequestsOutput struct {
	Requests []FriendRequest `json:"requests"`
}

// GroupAnnouncement is one group announcement.
type GroupAnnouncement struct {
	GroupID        int64  `json:"group_id"`
	AnnouncementID string `json:"announcement_id"`
	UserID         int64  `json:"user_id"`
	Time           int64  `json:"time"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url,omitempty"`
}

// GroupAnnouncementListOutput is the get_group_announcement_list payload.
type GroupAnnouncementListOutput struct {
	Announcements []GroupAnnouncement `json:"announcements"`
}

// GroupEssenceMessage is one group essence (pinned highlight) message.
type GroupEssenceMessage struct {
	GroupID       int64  `json:"group_id"`
	MessageSeq    int64  `json:"message_seq"`
	MessageTime   int64  `json:"message_time"`
	SenderID      int64  `json:"sender_id"`
	SenderName    string `json:"sender_name"`
	OperatorID    int64  `json:"operator_id"`
	OperatorName  string `json:"operator_name"`
	OperationTime int64  `json:"operation_time"`
}

// GroupEssenceMessagesOutput is the get_group_essence_messages payload.
type GroupEssenceMessagesOutput struct {
	Messages []GroupEssenceMessage `json:"messages"`
	IsEnd    bool                  `json:"is_end"`
}

// GroupNotification is one entry of the group notification list.
type GroupNotification struct {
	Type            string `json:"type"`
	GroupID         int64  `json:"group_id"`
	NotificationSeq int64  `json:"notification_seq"`
	InitiatorID     int64  `json:"initiator_id,omitempty"`
	TargetUserID    int64  `json:"target_user_id,omitempty"`
	OperatorID      int64  `json:"operator_id,omitempty"`
	State           string `json:"state,omitempty"`
	Comment         string `json:"comment,omitempty"`
	IsFiltered      bool   `json:"is_filtered"`
}

// GroupNotificationsOutput is the get_group_notifications payload.
type GroupNotificationsOutput struct {
	Notifications       []GroupNotification `json:"notifications"`
	NextNotificationSeq int64               `json:"next_notification_seq,omitempty"`
}

// UploadFileOutput is returned by both upload_private_file and
// upload_group_file.
type UploadFileOutput struct {
	FileID string `json:"file_id"`
}

// FileDownloadURLOutput is returned by both file download URL actions.
type FileDownloadURLOutput struct {
	DownloadURL string `json:"download_url"`
}

// GroupFile is one file entry of a group file listing.
type GroupFile struct {
	GroupID         int64  `json:"group_id"`
	FileID          string `json:"file_id"`
	FileName        string `json:"file_name"`
	ParentFolderID  string `json:"parent_folder_id,omitempty"`
	FileSize        int64  `json:"file_size"`
	UploadedTime    int64  `json:"uploaded_time"`
	ExpireTime      int64  `json:"expire_time,omitempty"`
	UploaderID      int64  `json:"uploader_id"`
	DownloadedTimes int    `json:"downloaded_times"`
}

// GroupFolder is one folder entry of a group file listing.
type GroupFolder struct {
	GroupID          int64  `json:"group_id"`
	FolderID         string `json:"folder_id"`
	ParentFolderID   string `json:"parent_folder_id,omitempty"`
	FolderName       string `json:"folder_name"`
	CreatedTime      int64  `json:"created_time"`
	LastModifiedTime int64  `json:"last_modified_time"`
	CreatorID        int64  `json:"creator_id"`
	FileCount        int    `json:"file_count"`
}

// GroupFilesOutput is the get_group_files payload.
type GroupFilesOutput struct {
	Files   []GroupFile   `json:"files"`
	Folders []GroupFolder `json:"folders"`
}

// CreateGroupFolderOutput is the create_group_folder payload.
type CreateGroupFolderOutput struct {
	FolderID string `json:"folder_id"`
}

// System actions.

// GetLoginInfo returns the logged-in account identity.
func (c *Client) GetLoginInfo(ctx context.Context) (LoginInfo, error) {
	return call[LoginInfo](ctx, c, "get_login_info", struct{}{})
}

// GetImplInfo returns information about the protocol implementation.
func (c *Client) GetImplInfo(ctx context.Context) (ImplInfo, error) {
	return call[ImplInfo](ctx, c, "get_impl_info", struct{}{})
}

// GetUserProfile returns a user's public profile.
func (c *Client) GetUserProfile(ctx context.Context, userID int64) (UserProfile, error) {
	return call[UserProfile](ctx, c, "get_user_profile", struct {
		UserID int64 `json:"user_id"`
	}{userID})
}

// GetFriendList returns all friends.
func (c *Client) GetFriendList(ctx context.Context, noCache bool) (FriendListOutput, error) {
	return call[FriendListOutput](ctx, c, "get_friend_list", struct {
		NoCache bool `json:"no_cache"`
	}{noCache})
}

// GetFriendInfo returns one friend.
func (c *Client) GetFriendInfo(ctx context.Context, userID int64, noCache bool) (FriendInfoOutput, error) {
	return call[FriendInfoOutput](ctx, c, "get_friend_info", struct {
		UserID  int64 `json:"user_id"`
		NoCache bool  `json:"no_cache"`
	}{userID, noCache})
}

// GetGroupList returns all joined groups.
func (c *Client) GetGroupList(ctx context.Context, noCache bool) (GroupListOutput, error) {
	return call[GroupListOutput](ctx, c, "get_group_list", struct {
		NoCache bool `json:"no_cache"`
	}{noCache})
}

// GetGroupInfo returns one group.
func (c *Client) GetGroupInfo(ctx context.Context, groupID int64, noCache bool) (GroupInfoOutput, error) {
	return call[GroupInfoOutput](ctx, c, "get_group_info", struct {
		GroupID int64 `json:"group_id"`
		NoCache bool  `json:"no_cache"`
	}{groupID, noCache})
}

// GetGroupMemberList returns all members of a group.
func (c *Client) GetGroupMemberList(ctx context.Context, groupID int64, noCache bool) (GroupMemberListOutput, error) {
	return call[GroupMemberListOutput](ctx, c, "get_group_member_list", struct {
		GroupID int64 `json:"group_id"`
		NoCache bool  `json:"no_cache"`
	}{groupID, noCache})
}

// GetGroupMemberInfo returns one group member.
func (c *Client) GetGroupMemberInfo(ctx context.Context, groupID, userID int64, noCache bool) (GroupMemberInfoOutput, error) {
	return call[GroupMemberInfoOutput](ctx, c, "get_group_member_info", struct {
		GroupID int64 `json:"group_id"`
		UserID  int64 `json:"user_id"`
		NoCache bool  `json:"no_cache"`
	}{groupID, userID, noCache})
}

// GetCookies returns the account cookies for a domain.
func (c *Client) GetCookies(ctx context.Context, domain string) (CookiesOutput, error) {
	return call[CookiesOutput](ctx, c, "get_cookies", struct {
		Domain string `json:"domain"`
	}{domain})
}

// GetCSRFToken returns the account CSRF token.
func (c *Client) GetCSRFToken(ctx context.Context) (CSRFTokenOutput, error) {
	return call[CSRFTokenOutput](ctx, c, "get_csrf_token", struct{}{})
}

// Message actions.

// SendPrivateMessage sends segments to a user. Both friend and temp
// conversations route through this action, keyed by the peer user ID.
func (c *Client) SendPrivateMessage(ctx context.Context, userID int64, segments []OutgoingSegment) (SendMessageOutput, error) {
	return call[SendMessageOutput](ctx, c, "send_private_message", struct {
		UserID  int64             `json:"user_id"`
		Message []OutgoingSegment `json:"message"`
	}{userID, segments})
}

// SendGroupMessage sends segments to a group.
func (c *Client) SendGroupMessage(ctx context.Context, groupID int64, segments []OutgoingSegment) (SendMessageOutput, error) {
	return call[SendMessageOutput](ctx, c, "send_group_message", struct {
		GroupID int64             `json:"group_id"`
		Message []OutgoingSegment `json:"message"`
	}{groupID, segments})
}

// GetMessage fetches one historical message by scene, peer, and sequence
// number.
func (c *Client) GetMessage(ctx context.Context, scene Scene, peerID, messageSeq int64) (MessageOutput, error) {
	return call[MessageOutput](ctx, c, "get_message", struct {
		MessageScene Scene `json:"message_scene"`
		PeerID       int64 `json:"peer_id"`
		MessageSeq   int64 `json:"message_seq"`
	}{scene, peerID, messageSeq})
}

// GetHistoryMessages fetches messages older than startMessageSeq. A zero
// startMessageSeq starts from the newest message.
func (c *Client) GetHistoryMessages(ctx context.Context, scene Scene, peerID, startMessageSeq int64, limit int) (HistoryMessagesOutput, error) {
	return call[HistoryMessagesOutput](ctx, c, "get_history_messages", struct {
		MessageScene    Scene `json:"message_scene"`
		PeerID          int64 `json:"peer_id"`
		StartMessageSeq int64 `json:"start_message_seq,omitempty"`
		Limit           int   `json:"limit,omitempty"`
	}{scene, peerID, startMessageSeq, limit})
}

// GetResourceTempURL resolves a resource ID into a temporary URL.
func (c *Client) GetResourceTempURL(ctx context.Context, resourceID string) (ResourceTempURLOutput, error) {
	return call[ResourceTempURLOutput](ctx, c, "get_resource_temp_url", struct {
		ResourceID string `json:"resource_id"`
	}{resourceID})
}

// GetForwardedMessages fetches the content of a merged-forward message.
func (c *Client) GetForwardedMessages(ctx context.Context, forwardID string) (ForwardedMessagesOutput, error) {
	return call[ForwardedMessagesOutput](ctx, c, "get_forwarded_messages", struct {
		ForwardID string `json:"forward_id"`
	}{forwardID})
}

// RecallPrivateMessage recalls a private message.
func (c *Client) RecallPrivateMessage(ctx context.Context, userID, messageSeq int64) error {
	_, err := call[struct{}](ctx, c, "recall_private_message", struct {
		UserID     int64 `json:"user_id"`
		MessageSeq int64 `json:"message_seq"`
	}{userID, messageSeq})
	return err
}

// RecallGroupMessage recalls a group message.
func (c *Client) RecallGroupMessage(ctx context.Context, groupID, messageSeq int64) error {
	_, err := call[struct{}](ctx, c, "recall_group_message", struct {
		GroupID    int64 `json:"group_id"`
		MessageSeq int64 `json:"message_seq"`
	}{groupID, messageSeq})
	return err
}

// MarkMessageAsRead marks a conversation as read up to a message.
func (c *Client) MarkMessageAsRead(ctx context.Context, scene Scene, peerID, messageSeq int64) error {
	_, err := call[struct{}](ctx, c, "mark_message_as_read", struct {
		MessageScene Scene `json:"message_scene"`
		PeerID       int64 `json:"peer_id"`
		MessageSeq   int64 `json:"message_seq"`
	}{scene, peerID, messageSeq})
	return err
}

// Social actions.

// SendFriendNudge pokes a friend.
func (c *Client) SendFriendNudge(ctx context.Context, userID int64, isSelf bool) error {
	_, err := call[struct{}](ctx, c, "send_friend_nudge", struct {
		UserID int64 `json:"user_id"`
		IsSelf bool  `json:"is_self"`
	}{userID, isSelf})
	return err
}

// SendProfileLike likes a user's profile card.
func (c *Client) SendProfileLike(ctx context.Context, userID int64, count int) error {
	_, err := call[struct{}](ctx, c, "send_profile_like", struct {
		UserID int64 `json:"user_id"`
		Count  int   `json:"count"`
	}{userID, count})
	return err
}

// GetFriendRequests lists pending friend requests.
func (c *Client) GetFriendRequests(ctx context.Context, limit int, isFiltered bool) (FriendRequestsOutput, error) {
	return call[FriendRequestsOutput](ctx, c, "get_friend_requests", struct {
		Limit      int  `json:"limit,omitempty"`
		IsFiltered bool `json:"is_filtered"`
	}{limit, isFiltered})
}

// AcceptFriendRequest accepts a pending friend request.
func (c *Client) AcceptFriendRequest(ctx context.Context, initiatorUID string, isFiltered bool) error {
	_, err := call[struct{}](ctx, c, "accept_friend_request", struct {
		InitiatorUID string `json:"initiator_uid"`
		IsFiltered   bool   `json:"is_filtered"`
	}{initiatorUID, isFiltered})
	return err
}

// RejectFriendRequest rejects a pending friend request.
func (c *Client) RejectFriendRequest(ctx context.Context, initiatorUID string, isFiltered bool, reason string) error {
	_, err := call[struct{}](ctx, c, "reject_friend_request", struct {
		InitiatorUID string `json:"initiator_uid"`
		IsFiltered   bool   `json:"is_filtered"`
		Reason       string `json:"reason,omitempty"`
	}{initiatorUID, isFiltered, reason})
	return err
}

// Group administration actions.

// SetGroupName renames a group.
func (c *Client) SetGroupName(ctx context.Context, groupID int64, name string) error {
	_, err := call[struct{}](ctx, c, "set_group_name", struct {
		GroupID      int64  `json:"group_id"`
		NewGroupName string `json:"new_group_name"`
	}{groupID, name})
	return err
}

// SetGroupAvatar replaces a group's avatar.
func (c *Client) SetGroupAvatar(ctx context.Context, groupID int64, imageURI string) error {
	_, err := call[struct{}](ctx, c, "set_group_avatar", struct {
		GroupID  int64  `json:"group_id"`
		ImageURI string `json:"image_uri"`
	}{groupID, imageURI})
	return err
}

// SetGroupMemberCard sets a member's in-group display card.
func (c *Client) SetGroupMemberCard(ctx context.Context, groupID, userID int64, card string) error {
	_, err := call[struct{}](ctx, c, "set_group_member_card", struct {
		GroupID int64  `json:"group_id"`
		UserID  int64  `json:"user_id"`
		Card    string `json:"card"`
	}{groupID, userID, card})
	return err
}

// SetGroupMemberSpecialTitle sets a member's special title.
func (c *Client) SetGroupMemberSpecialTitle(ctx context.Context, groupID, userID int64, title string) error {
	_, err := call[struct{}](ctx, c, "set_group_member_special_title", struct {
		GroupID      int64  `json:"group_id"`
		UserID       int64  `json:"user_id"`
		SpecialTitle string `json:"special_title"`
	}{groupID, userID, title})
	return err
}

// SetGroupMemberAdmin grants or revokes a member's admin role.
func (c *Client) SetGroupMemberAdmin(ctx context.Context, groupID, userID int64, isSet bool) error {
	_, err := call[struct{}](ctx, c, "set_group_member_admin", struct {
		GroupID int64 `json:"group_id"`
		UserID  int64 `json:"user_id"`
		IsSet   bool  `json:"is_set"`
	}{groupID, userID, isSet})
	return err
}

// SetGroupMemberMute mutes a member for duration seconds; zero unmutes.
func (c *Client) SetGroupMemberMute(ctx context.Context, groupID, userID int64, duration int) error {
	_, err := call[struct{}](ctx, c, "set_group_member_mute", struct {
		GroupID  int64 `json:"group_id"`
		UserID   int64 `json:"user_id"`
		Duration int   `json:"duration"`
	}{groupID, userID, duration})
	return err
}

// SetGroupWholeMute mutes or unmutes the entire group.
func (c *Client) SetGroupWholeMute(ctx context.Context, groupID int64, isMute bool) error {
	_, err := call[struct{}](ctx, c, "set_group_whole_mute", struct {
		GroupID int64 `json:"group_id"`
		IsMute  bool  `json:"is_mute"`
	}{groupID, isMute})
	return err
}

// KickGroupMember removes a member from a group.
func (c *Client) KickGroupMember(ctx context.Context, groupID, userID int64, rejectAddRequest bool) error {
	_, err := call[struct{}](ctx, c, "kick_group_member", struct {
		GroupID          int64 `json:"group_id"`
		UserID           int64 `json:"user_id"`
		RejectAddRequest bool  `json:"reject_add_request"`
	}{groupID, userID, rejectAddRequest})
	return err
}

// GetGroupAnnouncementList lists a group's announcements.
func (c *Client) GetGroupAnnouncementList(ctx context.Context, groupID int64) (GroupAnnouncementListOutput, error) {
	return call[GroupAnnouncementListOutput](ctx, c, "get_group_announcement_list", struct {
		GroupID int64 `json:"group_id"`
	}{groupID})
}

// SendGroupAnnouncement publishes a group announcement.
func (c *Client) SendGroupAnnouncement(ctx context.Context, groupID int64, content, imageURI string) error {
	_, err := call[struct{}](ctx, c, "send_group_announcement", struct {
		GroupID  int64  `json:"group_id"`
		Content  string `json:"content"`
		ImageURI string `json:"image_uri,omitempty"`
	}{groupID, content, imageURI})
	return err
}

// DeleteGroupAnnouncement removes a group announcement.
func (c *Client) DeleteGroupAnnouncement(ctx context.Context, groupID int64, announcementID string) error {
	_, err := call[struct{}](ctx, c, "delete_group_announcement", struct {
		GroupID        int64  `json:"group_id"`
		AnnouncementID string `json:"announcement_id"`
	}{groupID, announcementID})
	return err
}

// GetGroupEssenceMessages lists a page of a group's essence messages.
func (c *Client) GetGroupEssenceMessages(ctx context.Context, groupID int64, pageIndex, pageSize int) (GroupEssenceMessagesOutput, error) {
	return call[GroupEssenceMessagesOutput](ctx, c, "get_group_essence_messages", struct {
		GroupID   int64 `json:"group_id"`
		PageIndex int   `json:"page_index"`
		PageSize  int   `json:"page_size"`
	}{groupID, pageIndex, pageSize})
}

// SetGroupEssenceMessage marks or unmarks a message as group essence.
func (c *Client) SetGroupEssenceMessage(ctx context.Context, groupID, messageSeq int64, isSet bool) error {
	_, err := call[struct{}](ctx, c, "set_group_essence_message", struct {
		GroupID    int64 `json:"group_id"`
		MessageSeq int64 `json:"message_seq"`
		IsSet      bool  `json:"is_set"`
	}{groupID, messageSeq, isSet})
	return err
}

// QuitGroup leaves a group.
func (c *Client) QuitGroup(ctx context.Context, groupID int64) error {
	_, err := call[struct{}](ctx, c, "quit_group", struct {
		GroupID int64 `json:"group_id"`
	}{groupID})
	return err
}

// SendGroupMessageReaction adds or removes an emoji reaction.
func (c *Client) SendGroupMessageReaction(ctx context.Context, groupID, messageSeq int64, reaction string, isAdd bool) error {
	_, err := call[struct{}](ctx, c, "send_group_message_reaction", struct {
		GroupID    int64  `json:"group_id"`
		MessageSeq int64  `json:"message_seq"`
		Reaction   string `json:"reaction"`
		IsAdd      bool   `json:"is_add"`
	}{groupID, messageSeq, reaction, isAdd})
	return err
}

// SendGroupNudge pokes a group member.
func (c *Client) SendGroupNudge(ctx context.Context, groupID, userID int64) error {
	_, err := call[struct{}](ctx, c, "send_group_nudge", struct {
		GroupID int64 `json:"group_id"`
		UserID  int64 `json:"user_id"`
	}{groupID, userID})
	return err
}

// GetGroupNotifications lists pending group notifications.
func (c *Client) GetGroupNotifications(ctx context.Context, startNotificationSeq int64, isFiltered bool, limit int) (GroupNotificationsOutput, error) {
	return call[GroupNotificationsOutput](ctx, c, "get_group_notifications", struct {
		StartNotificationSeq int64 `json:"start_notification_seq,omitempty"`
		IsFiltered           bool  `json:"is_filtered"`
		Limit                int   `json:"limit,omitempty"`
	}{startNotificationSeq, isFiltered, limit})
}

// AcceptGroupRequest accepts a join or invited-join request.
func (c *Client) AcceptGroupRequest(ctx context.Context, notificationSeq int64, isFiltered bool) error {
	_, err := call[struct{}](ctx, c, "accept_group_request", struct {
		NotificationSeq int64 `json:"notification_seq"`
		IsFiltered      bool  `json:"is_filtered"`
	}{notificationSeq, isFiltered})
	return err
}

// RejectGroupRequest rejects a join or invited-join request.
func (c *Client) RejectGroupRequest(ctx context.Context, notificationSeq int64, isFiltered bool, reason string) error {
	_, err := call[struct{}](ctx, c, "reject_group_request", struct {
		NotificationSeq int64  `json:"notification_seq"`
		IsFiltered      bool   `json:"is_filtered"`
		Reason          string `json:"reason,omitempty"`
	}{notificationSeq, isFiltered, reason})
	return err
}

// AcceptGroupInvitation accepts an invitation for the bot itself to join a
// group.
func (c *Client) AcceptGroupInvitation(ctx context.Context, groupID, invitationSeq int64) error {
	_, err := call[struct{}](ctx, c, "accept_group_invitation", struct {
		GroupID       int64 `json:"group_id"`
		InvitationSeq int64 `json:"invitation_seq"`
	}{groupID, invitationSeq})
	return err
}

// RejectGroupInvitation rejects an invitation for the bot itself to join a
// group.
func (c *Client) RejectGroupInvitation(ctx context.Context, groupID, invitationSeq int64) error {
	_, err := call[struct{}](ctx, c, "reject_group_invitation", struct {
		GroupID       int64 `json:"group_id"`
		InvitationSeq int64 `json:"invitation_seq"`
	}{groupID, invitationSeq})
	return err
}

// File actions.

// UploadPrivateFile uploads a file to a private conversation.
func (c *Client) UploadPrivateFile(ctx context.Context, userID int64, fileURI, fileName string) (UploadFileOutput, error) {
	return call[UploadFileOutput](ctx, c, "upload_private_file", struct {
		UserID   int64  `json:"user_id"`
		FileURI  string `json:"file_uri"`
		FileName string `json:"file_name"`
	}{userID, fileURI, fileName})
}

// UploadGroupFile uploads a file to a group, optionally into a folder.
func (c *Client) UploadGroupFile(ctx context.Context, groupID int64, parentFolderID, fileURI, fileName string) (UploadFileOutput, error) {
	return call[UploadFileOutput](ctx, c, "upload_group_file", struct {
		GroupID        int64  `json:"group_id"`
		ParentFolderID string `json:"parent_folder_id,omitempty"`
		FileURI        string `json:"file_uri"`
		FileName       string `json:"file_name"`
	}{groupID, parentFolderID, fileURI, fileName})
}

// GetPrivateFileDownloadURL resolves a private file into a download URL.
// The file hash is required for private files.
func (c *Client) GetPrivateFileDownloadURL(ctx context.Context, userID int64, fileID, fileHash string) (FileDownloadURLOutput, error) {
	return call[FileDownloadURLOutput](ctx, c, "get_private_file_download_url", struct {
		UserID   int64  `json:"user_id"`
		FileID   string `json:"file_id"`
		FileHash string `json:"file_hash"`
	}{userID, fileID, fileHash})
}

// GetGroupFileDownloadURL resolves a group file into a download URL.
func (c *Client) GetGroupFileDownloadURL(ctx context.Context, groupID int64, fileID string) (FileDownloadURLOutput, error) {
	return call[FileDownloadURLOutput](ctx, c, "get_group_file_download_url", struct {
		GroupID int64  `json:"group_id"`
		FileID  string `json:"file_id"`
	}{groupID, fileID})
}

// GetGroupFiles lists the files and folders of a group folder.
func (c *Client) GetGroupFiles(ctx context.Context, groupID int64, parentFolderID string) (GroupFilesOutput, error) {
	return call[GroupFilesOutput](ctx, c, "get_group_files", struct {
		GroupID        int64  `json:"group_id"`
		ParentFolderID string `json:"parent_folder_id,omitempty"`
	}{groupID, parentFolderID})
}

// MoveGroupFile moves a group file between folders.
func (c *Client) MoveGroupFile(ctx context.Context, groupID int64, fileID, parentFolderID, targetFolderID string) error {
	_, err := call[struct{}](ctx, c, "move_group_file", struct {
		GroupID        int64  `json:"group_id"`
		FileID         string `json:"file_id"`
		ParentFolderID string `json:"parent_folder_id,omitempty"`
		TargetFolderID string `json:"target_folder_id,omitempty"`
	}{groupID, fileID, parentFolderID, targetFolderID})
	return err
}

// RenameGroupFile renames a group file.
func (c *Client) RenameGroupFile(ctx context.Context, groupID int64, fileID, parentFolderID, newFileName string) error {
	_, err := call[struct{}](ctx, c, "rename_group_file", struct {
		GroupID        int64  `json:"group_id"`
		FileID         string `json:"file_id"`
		ParentFolderID string `json:"parent_folder_id,omitempty"`
		NewFileName    string `json:"new_file_name"`
	}{groupID, fileID, parentFolderID, newFileName})
	return err
}

// DeleteGroupFile deletes a group file.
func (c *Client) DeleteGroupFile(ctx context.Context, groupID int64, fileID string) error {
	_, err := call[struct{}](ctx, c, "delete_group_file", struct {
		GroupID int64  `json:"group_id"`
		FileID  string `json:"file_id"`
	}{groupID, fileID})
	return err
}

// CreateGroupFolder creates a group folder.
func (c *Client) CreateGroupFolder(ctx context.Context, groupID int64, folderName string) (CreateGroupFolderOutput, error) {
	return call[CreateGroupFolderOutput](ctx, c, "create_group_folder", struct {
		GroupID    int64  `json:"group_id"`
		FolderName string `json:"folder_name"`
	}{groupID, folderName})
}

// RenameGroupFolder renames a group folder.
func (c *Client) RenameGroupFolder(ctx context.Context, groupID int64, folderID, newFolderName string) error {
	_, err := call[struct{}](ctx, c, "rename_group_folder", struct {
		GroupID       int64  `json:"group_id"`
		FolderID      string `json:"folder_id"`
		NewFolderName string `json:"new_folder_name"`
	}{groupID, folderID, newFolderName})
	return err
}

// DeleteGroupFolder deletes a group folder.
func (c *Client) DeleteGroupFolder(ctx context.Context, groupID int64, folderID string) error {
	_, err := call[struct{}](ctx, c, "delete_group_folder", struct {
		GroupID  int64  `json:"group_id"`
		FolderID string `json:"folder_id"`
	}{groupID, folderID})
	return err
}
