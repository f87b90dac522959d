package domain

// Content shown instead of a soft-deleted reply.
const DeletedReplyContent = "**balasan telah dihapus**"

type NewCommentReply struct {
	Content   string
	ThreadId  ThreadId
	CommentId CommentId
	Owner     UserId
}

func ParseNewCommentReply(p Payload) (NewCommentReply, error) {
	v, err := requireEntityFields(p, "NEW_COMMENT_REPLY", "content", "threadId", "commentId", "owner")
	if err != nil {
		return NewCommentReply{}, err
	}
	return NewCommentReply{
		Content:   v["content"],
		ThreadId:  v["threadId"],
		CommentId: v["commentId"],
		Owner:     v["owner"],
	}, nil
}

type AddedCommentReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

func ParseAddedCommentReply(p Payload) (AddedCommentReply, error) {
	v, err := requireEntityFields(p, "ADDED_COMMENT_REPLY", "id", "content", "owner")
	if err != nil {
		return AddedCommentReply{}, err
	}
	return AddedCommentReply{Id: v["id"], Content: v["content"], Owner: v["owner"]}, nil
}

// ReplyRow is a stored reply joined with its owner's username.
type ReplyRow struct {
	Id        ReplyId
	CommentId CommentId
	Content   string
	Date      string
	Username  string
	IsDelete  bool
}

type ReplyView struct {
	Id       ReplyId `json:"id"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
	Username string  `json:"username"`
}
