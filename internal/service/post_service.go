package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"pic-share-server/internal/common"
	"pic-share-server/internal/consts"
	"pic-share-server/internal/model"

	"gorm.io/gorm"
)

// CreatePost 创建图片帖子。描述与图片均为必填。
func (s *AppService) CreatePost(userID uint, description string, file *multipart.FileHeader) (*model.PostView, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, common.NewValidationError("描述不能为空")
	}
	if file == nil {
		return nil, common.NewValidationError("请选择图片")
	}

	if _, err := s.repos.Users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		log.Printf("find user error: %v", err)
		return nil, common.NewInternalError("发布失败，请稍后重试")
	}

	ext, err := s.ValidateImageFile(file)
	if err != nil {
		return nil, err
	}

	relativePath, err := s.saveUploadedImage(file, ext)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		UserID:      userID,
		Description: description,
		ImagePath:   relativePath,
		Likes:       0,
	}
	if err := s.repos.Posts.Create(&post); err != nil {
		// 数据库写入失败则回滚已落盘的文件
		removeUploadedImage(relativePath)
		log.Printf("create post error: %v", err)
		return nil, common.NewInternalError("发布失败，请稍后重试")
	}

	s.InvalidateFeedCache()

	view, err := s.repos.Posts.FindViewByID(post.ID)
	if err != nil {
		log.Printf("load created post error: %v", err)
		return nil, common.NewInternalError("发布失败，请稍后重试")
	}
	view.ImagePath = ImageURL(view.ImagePath)
	return view, nil
}

// ListPosts 返回全部帖子（新帖在前，含作者用户名）。
// 启用 Redis 时结果按 TTL 缓存。
func (s *AppService) ListPosts() ([]model.PostView, error) {
	if views, ok := s.cachedFeed(); ok {
		return views, nil
	}

	views, err := s.repos.Posts.ListAll()
	if err != nil {
		log.Printf("list posts error: %v", err)
		return nil, common.NewInternalError("获取帖子列表失败")
	}
	for i := range views {
		views[i].ImagePath = ImageURL(views[i].ImagePath)
	}

	s.storeFeedCache(views)
	return views, nil
}

// ListUserPosts 返回指定用户的帖子（新帖在前）。
func (s *AppService) ListUserPosts(userID uint) ([]model.PostView, error) {
	views, err := s.repos.Posts.ListByUser(userID)
	if err != nil {
		log.Printf("list user posts error: %v", err)
		return nil, common.NewInternalError("获取用户帖子失败")
	}
	for i := range views {
		views[i].ImagePath = ImageURL(views[i].ImagePath)
	}
	return views, nil
}

// DeletePost 删除帖子及其全部评论（单事务），提交后再删除图片文件。
// 仅帖子作者可删除。
func (s *AppService) DeletePost(postID, requesterID uint) error {
	post, err := s.repos.Posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFoundError("帖子不存在")
		}
		log.Printf("find post error: %v", err)
		return common.NewInternalError("删除失败，请稍后重试")
	}

	if post.UserID != requesterID {
		return common.NewForbiddenError("无权删除该帖子")
	}

	if err := s.repos.Posts.DeleteWithComments(postID); err != nil {
		log.Printf("delete post error: %v", err)
		return common.NewInternalError("删除失败，请稍后重试")
	}

	// 事务提交后删除物理文件
	removeUploadedImage(post.ImagePath)
	s.InvalidateFeedCache()
	return nil
}

// LikePost 原子自增点赞计数并返回新值。
func (s *AppService) LikePost(postID uint) (int, error) {
	likes, err := s.repos.Posts.IncrementLikes(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.NewNotFoundError("帖子不存在")
		}
		log.Printf("like post error: %v", err)
		return 0, common.NewInternalError("点赞失败，请稍后重试")
	}
	return likes, nil
}

// UnlikePost 原子自减点赞计数（0 为下限）并返回新值。
func (s *AppService) UnlikePost(postID uint) (int, error) {
	likes, err := s.repos.Posts.DecrementLikes(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.NewNotFoundError("帖子不存在")
		}
		log.Printf("unlike post error: %v", err)
		return 0, common.NewInternalError("取消点赞失败，请稍后重试")
	}
	return likes, nil
}

// --- 首页帖子列表的 Redis 缓存 ---
// 点赞计数依赖短 TTL 过期而非主动失效，保持点赞热路径只有一条 UPDATE。

func feedCacheKey() string {
	return RedisKey("feed", "all")
}

func (s *AppService) cachedFeed() ([]model.PostView, bool) {
	client := GetRedisClient()
	if client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	data, err := client.Get(ctx, feedCacheKey()).Bytes()
	if err != nil {
		return nil, false
	}

	var views []model.PostView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, false
	}
	return views, true
}

func (s *AppService) storeFeedCache(views []model.PostView) {
	client := GetRedisClient()
	if client == nil {
		return
	}

	ttlSeconds := s.GetInt(consts.ConfigFeedCacheTTLSeconds)
	if ttlSeconds <= 0 {
		return
	}

	data, err := json.Marshal(views)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Set(ctx, feedCacheKey(), data, time.Duration(ttlSeconds)*time.Second).Err()
}

// InvalidateFeedCache 在帖子增删后主动失效列表缓存。
func (s *AppService) InvalidateFeedCache() {
	client := GetRedisClient()
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Del(ctx, feedCacheKey()).Err()
}
