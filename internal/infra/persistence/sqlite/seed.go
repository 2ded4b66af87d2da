package sqlite

import "canteen/internal/domain/entity"

// Seed data for a fresh (or unreadable) store: the three family members and
// the four starter dishes the household begins with. Loading falls back to
// these whenever a record is missing or corrupt.

// DefaultUsers returns the built-in family members.
func DefaultUsers() []entity.User {
	return []entity.User{
		{
			ID:               "1",
			Name:             "爸爸",
			Password:         "admin",
			Balance:          500,
			HouseworkCredits: 10,
			Role:             entity.RoleAdmin,
			Avatar:           "https://picsum.photos/seed/papa/200",
		},
		{
			ID:               "2",
			Name:             "妈妈",
			Password:         "123",
			Balance:          1000,
			HouseworkCredits: 50,
			Role:             entity.RoleAdmin,
			Avatar:           "https://picsum.photos/seed/mama/200",
		},
		{
			ID:               "3",
			Name:             "宝贝",
			Password:         "123",
			Balance:          50,
			HouseworkCredits: 2,
			Role:             entity.RoleMember,
			Avatar:           "https://picsum.photos/seed/baby/200",
		},
	}
}

// DefaultDishes returns the built-in starter menu.
func DefaultDishes() []entity.Dish {
	return []entity.Dish{
		{
			ID:                "d1",
			Name:              "红烧肉",
			Description:       "经典的家常硬菜，色泽金黄，肥而不腻。",
			Price:             35,
			ChorePrice:        2,
			SupportsBalance:   true,
			SupportsHousework: true,
			ImageURL:          "https://images.unsplash.com/photo-1623341214825-9f4f963727da?q=80&w=400&h=300&auto=format&fit=crop",
			Category:          "热菜",
			Ingredients:       []string{"五花肉 500g", "生抽", "老抽", "冰糖", "八角", "桂皮", "生姜"},
			Steps: []string{
				"五花肉切块，冷水下锅焯水去腥。",
				"锅内少许油，下五花肉煎至微焦出油。",
				"放入冰糖炒出糖色，加入生抽老抽。",
				"加入热水没过肉块，放入香料中小火慢炖45分钟。",
				"最后大火收汁，至汤汁浓稠即可。",
			},
			CookingTime:  "60分钟",
			Difficulty:   3,
			TasteOptions: []string{"常规口味", "少糖少油", "加辣版", "软烂一点"},
		},
		{
			ID:                "d2",
			Name:              "清蒸鱼",
			Description:       "保持原汁原味，鱼肉鲜嫩细腻。",
			Price:             45,
			ChorePrice:        3,
			SupportsBalance:   true,
			SupportsHousework: true,
			ImageURL:          "https://images.unsplash.com/photo-1580476262798-bddd9f4b7369?q=80&w=400&h=300&auto=format&fit=crop",
			Category:          "热菜",
			Ingredients:       []string{"新鲜鲈鱼 1条", "大葱", "姜丝", "蒸鱼豉油", "热油"},
			Steps: []string{
				"鱼身两面切花刀，涂抹料酒腌制。",
				"盘底垫姜片，鱼身上铺姜丝葱段。",
				"水开后入锅大火蒸8-10分钟。",
				"倒掉盘中多余水分，淋上蒸鱼豉油。",
				"泼上一层滚烫的热油激发出香气。",
			},
			CookingTime:  "15分钟",
			Difficulty:   2,
			TasteOptions: []string{"常规", "少盐", "不要葱姜", "多淋点油"},
		},
		{
			ID:                "d3",
			Name:              "蒜蓉油麦菜",
			Description:       "清淡爽口，营养丰富。",
			Price:             15,
			ChorePrice:        1,
			SupportsBalance:   true,
			SupportsHousework: true,
			ImageURL:          "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?q=80&w=400&h=300&auto=format&fit=crop",
			Category:          "素菜",
			Ingredients:       []string{"油麦菜", "大蒜 5瓣", "蚝油", "盐"},
			Steps: []string{
				"油麦菜洗净切段，大蒜拍碎切末。",
				"热锅凉油，下蒜末爆香。",
				"下油麦菜大火快速翻炒至断生。",
				"加入适量蚝油和盐，炒匀后立即出锅。",
			},
			CookingTime:  "5分钟",
			Difficulty:   1,
			TasteOptions: []string{"多蒜蓉", "不要蚝油", "微辣", "少盐清淡"},
		},
		{
			ID:                "d4",
			Name:              "可口可乐",
			Description:       "冰凉畅快，解腻必备。",
			Price:             3,
			ChorePrice:        0,
			SupportsBalance:   true,
			SupportsHousework: false,
			ImageURL:          "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?q=80&w=400&h=300&auto=format&fit=crop",
			Category:          "饮品",
			Ingredients:       []string{"罐装可乐 330ml", "冰块"},
			Steps: []string{
				"打开冰箱，取出冰镇可乐。",
				"倒入装满冰块的杯中饮用。",
			},
			CookingTime:  "1分钟",
			Difficulty:   1,
			TasteOptions: []string{"常温", "加冰", "多冰", "去冰"},
		},
	}
}
