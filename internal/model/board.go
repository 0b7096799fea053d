package model

type Board struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(30);not null;uniqueIndex:idx_board_name" json:"name"`
	Description string `gorm:"type:varchar(100);not null" json:"description"`

	// 关联关系
	Topics []Topic `gorm:"foreignKey:BoardID;references:ID"`
}

func (Board) TableName() string {
	return "boards"
}
