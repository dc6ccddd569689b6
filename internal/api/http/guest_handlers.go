package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zerobloat/shell/internal/notify"
	"github.com/zerobloat/shell/internal/shared/types"
)

// GuestDriveShortcutID identifies the dynamic shortcut that appears on the
// desktop while a guest image is mounted.
const GuestDriveShortcutID = "guest-drive"

// StartGuest spawns the guest VM for an image
func (h *Handlers) StartGuest(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	var req struct {
		ImagePath string `json:"image_path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	pid, err := h.guest.Start(c.Request.Context(), req.ImagePath)
	h.recordGuest("start", err)
	if err != nil {
		h.guestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pid": pid})
}

// StopGuest shuts the guest VM down
func (h *Handlers) StopGuest(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	err := h.guest.Stop(c.Request.Context())
	h.recordGuest("stop", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GuestStatus reports the guest VM state
func (h *Handlers) GuestStatus(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	status, err := h.guest.Status(c.Request.Context())
	h.recordGuest("status", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vm": status})
}

// ListDrives lists host drive mount points for the image picker
func (h *Handlers) ListDrives(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	drives, err := h.guest.Drives(c.Request.Context())
	h.recordGuest("drives", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "drives": drives})
}

// ListFolders lists directories under a host path for the image picker
func (h *Handlers) ListFolders(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	entries, err := h.guest.Folders(c.Request.Context(), req.Path)
	h.recordGuest("folders", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entries": entries})
}

// MountGuest boots the VM, mounts the image, and publishes the guest drive
// shortcut so the desktop gains a browsable drive icon
func (h *Handlers) MountGuest(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	var req struct {
		Filepath string `json:"filepath" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.guest.Connect(c.Request.Context(), req.Filepath)
	h.recordGuest("mount", err)
	if err != nil {
		h.notifier.Post(h.translate.T("notification.mount_failed", "Could not mount the image"), notify.LevelError)
		h.guestError(c, err)
		return
	}

	h.shortcuts.Add(guestDriveShortcut(result.MountedDevice, req.Filepath))
	h.notifier.Post(h.translate.T("notification.drive_mounted", "Guest drive mounted"), notify.LevelInfo)
	h.logger.Info("guest image mounted",
		zap.String("image", req.Filepath),
		zap.String("device", result.MountedDevice))

	c.JSON(http.StatusOK, gin.H{"success": true, "mount": result})
}

// UnmountGuest unmounts the image, stops the VM, and retires the guest
// drive shortcut
func (h *Handlers) UnmountGuest(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	err := h.guest.Disconnect(c.Request.Context())
	h.recordGuest("unmount", err)
	if err != nil {
		h.guestError(c, err)
		return
	}

	h.shortcuts.Remove(GuestDriveShortcutID)
	h.notifier.Post(h.translate.T("notification.drive_ejected", "Guest drive ejected"), notify.LevelInfo)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListGuestApps lists removable apps inside the mounted image, by category
func (h *Handlers) ListGuestApps(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	apps, err := h.guest.Apps(c.Request.Context())
	h.recordGuest("apps", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "apps": apps})
}

// DeleteGuestApps removes paths inside the mounted image
func (h *Handlers) DeleteGuestApps(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	var req struct {
		Paths []string `json:"paths" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	result, err := h.guest.Delete(c.Request.Context(), req.Paths)
	h.recordGuest("delete", err)
	if err != nil {
		h.notifier.Post(h.translate.T("notification.delete_failed", "Could not delete the selected apps"), notify.LevelError)
		h.guestError(c, err)
		return
	}

	h.notifier.Post(
		fmt.Sprintf("%s: %d", h.translate.T("notification.apps_deleted", "Apps removed"), len(result.Deleted)),
		notify.LevelInfo,
	)
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": result.Deleted})
}

// DetectEmulator identifies the emulator installed at a host path, for the
// image picker to preselect the right disk layout
func (h *Handlers) DetectEmulator(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	detection, err := h.guest.Detect(c.Request.Context(), req.Path)
	h.recordGuest("detect", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": detection})
}

// GuestLogs tails the guest backend's log file; ?n= caps the line count
func (h *Handlers) GuestLogs(c *gin.Context) {
	if !h.guestEnabled(c) {
		return
	}

	n, err := strconv.Atoi(c.DefaultQuery("n", "50"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: n must be a positive integer",
		})
		return
	}

	lines, err := h.guest.Logs(c.Request.Context(), n)
	h.recordGuest("logs", err)
	if err != nil {
		h.guestError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": lines})
}

func guestDriveShortcut(device, image string) types.Shortcut {
	return types.Shortcut{
		ID:        GuestDriveShortcutID,
		Label:     "shortcut.guest_drive",
		Icon:      "drive",
		Component: "FileExplorer",
		Props: map[string]interface{}{
			"device": device,
			"image":  image,
		},
	}
}

func (h *Handlers) recordGuest(op string, err error) {
	if h.metrics != nil {
		h.metrics.RecordGuestCall(op, err)
	}
}

func (h *Handlers) guestEnabled(c *gin.Context) bool {
	if h.guest == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "guest backend is disabled",
		})
		return false
	}
	return true
}

func (h *Handlers) guestError(c *gin.Context, err error) {
	h.logger.Warn("guest backend call failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
