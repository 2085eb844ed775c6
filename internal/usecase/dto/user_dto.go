package dto

// UpdateProfileParams 프로필 수정 매개변수. nil 필드는 변경하지 않습니다.
type UpdateProfileParams struct {
	Username  *string
	Password  *string
	AvatarURL *string
	Bio       *string
	Timezone  *string
}
