package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanbyul-dev/tripnote-backend/models"
	"github.com/hanbyul-dev/tripnote-backend/utils"
)

// ListGallery handles retrieving a trip's gallery, optionally filtered by
// a memo search
func ListGallery(c *gin.Context) {
	var request models.ListGalleryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	items, err := handlerServices.GalleryService.List(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, items)
}

// UploadGalleryImage handles a multipart photo upload. The image lands in
// the uploads directory under a generated name and the item is recorded
// with its public URL.
func UploadGalleryImage(c *gin.Context) {
	tripID := c.PostForm("tripId")
	if tripID == "" {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}
	memo := c.PostForm("memo")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		log.Printf("Error receiving file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("No file uploaded or invalid form: %v", err)})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		log.Printf("Invalid file type: %s", ext)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPG, JPEG, and PNG files are supported"})
		return
	}

	filename := utils.GenerateFileName(ext)
	filePath := filepath.Join("uploads", filename)

	out, err := os.Create(filePath)
	if err != nil {
		log.Printf("Error creating file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save file: %v", err)})
		return
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		log.Printf("Error copying file data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save file: %v", err)})
		return
	}

	imageURL := publicURL(filename)
	item, err := handlerServices.GalleryService.Add(tripID, memo, imageURL, filePath)
	if err != nil {
		os.Remove(filePath)
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, item)
}

// publicURL builds the externally reachable URL for an uploaded file
func publicURL(filename string) string {
	base := strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")
	return fmt.Sprintf("%s/uploads/%s", base, filename)
}

// UpdateGalleryMemo handles replacing a gallery item's memo
func UpdateGalleryMemo(c *gin.Context) {
	var request models.UpdateGalleryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.GalleryService.UpdateMemo(&request); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"updated": true})
}

// RemoveGalleryItem handles the confirmation-gated deletion of a photo
// and its stored file
func RemoveGalleryItem(c *gin.Context) {
	var request models.RemoveEntityRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	deleted, err := handlerServices.GalleryService.Remove(request.ID, request.Confirm)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RemoveResponse{Deleted: deleted})
}
