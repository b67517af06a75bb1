package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// FileStorage saves an uploaded file and returns a reference that can be
// served back to clients as-is (a full URL for hosted storage, an /uploads
// path for local storage).
type FileStorage interface {
	Save(data []byte, fileName string, folder string) (string, error)
}

type S3Storage struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
}

func (s *S3Storage) client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.Region),
		Endpoint: aws.String(s.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.AccessKey, s.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

func (s *S3Storage) Save(data []byte, fileName string, folder string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	_, err := s.client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/jpeg"),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("https://%s.object.pscloud.io/%s", s.Bucket, filePath), nil
}

type LocalStorage struct {
	Dir string
}

// Save writes the file directly under Dir. The folder argument is an S3 key
// prefix concern; local files are served flat via GET /uploads/:filename.
func (l *LocalStorage) Save(data []byte, fileName string, _ string) (string, error) {
	if _, err := os.Stat(l.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(l.Dir, os.ModePerm); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(filepath.Join(l.Dir, fileName), data, 0o644); err != nil {
		return "", err
	}

	return "/uploads/" + fileName, nil
}
