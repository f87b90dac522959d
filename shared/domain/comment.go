package domain

// Content shown instead of a soft-deleted comment.
const DeletedCommentContent = "**komentar telah dihapus**"

type NewThreadComment struct {
	Content  string
	ThreadId ThreadId
	Owner    UserId
}

func ParseNewThreadComment(p Payload) (NewThreadComment, error) {
	v, err := requireEntityFields(p, "NEW_THREAD_COMMENT", "content", "threadId", "owner")
	if err != nil {
		return NewThreadComment{}, err
	}
	return NewThreadComment{Content: v["content"], ThreadId: v["threadId"], Owner: v["owner"]}, nil
}

type AddedThreadComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func ParseAddedThreadComment(p Payload) (AddedThreadComment, error) {
	v, err := requireEntityFields(p, "ADDED_THREAD_COMMENT", "id", "content", "owner")
	if err != nil {
		return AddedThreadComment{}, err
	}
	return AddedThreadComment{Id: v["id"], Content: v["content"], Owner: v["owner"]}, nil
}

// ThreadCommentDetailRequest selects the comments of one thread.
type ThreadCommentDetailRequest struct {
	ThreadId ThreadId
}

func ParseThreadCommentDetail(p Payload) (ThreadCommentDetailRequest, error) {
	v, err := requireEntityFields(p, "THREAD_COMMENT_DETAIL", "threadId")
	if err != nil {
		return ThreadCommentDetailRequest{}, err
	}
	return ThreadCommentDetailRequest{ThreadId: v["threadId"]}, nil
}

// CommentRow is a stored comment joined with its owner's username.
type CommentRow struct {
	Id       CommentId
	Content  string
	Date     string
	Username string
	IsDelete bool
}

// CommentView is the outward shape of a comment: deleted content is masked
// and the delete flag is not exposed.
type CommentView struct {
	Id       CommentId   `json:"id"`
	Content  string      `json:"content"`
	Date     string      `json:"date"`
	Username string      `json:"username"`
	Replies  []ReplyView `json:"replies"`
}
