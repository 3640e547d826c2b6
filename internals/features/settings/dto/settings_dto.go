package dto

type SettingsUpdateRequest struct {
	MinPlayCountPublic     *int64 `json:"min_play_count_public" validate:"omitempty,min=0"`
	MinDownloadCountPublic *int64 `json:"min_download_count_public" validate:"omitempty,min=0"`
	MinViewCountPublic     *int64 `json:"min_view_count_public" validate:"omitempty,min=0"`
}
