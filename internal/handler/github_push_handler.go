package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// 一次性工具：把当前部署的代码推到 GitHub 以便构建 APK
// 与核心功能无关，保持独立

var pushSkipDirs = map[string]bool{
	".git":         true,
	"uploads":      true,
	"node_modules": true,
	"dist":         true,
	".cache":       true,
}

var pushSkipFiles = map[string]bool{
	"lovedays.db": true,
}

type githubPushRequest struct {
	Token string `json:"token"`
	Repo  string `json:"repo"`
}

const githubPushPage = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="UTF-8">
<title>Đẩy Code lên GitHub</title>
<style>
body{font-family:system-ui,sans-serif;background:#764ba2;min-height:100vh;display:flex;align-items:center;justify-content:center;padding:20px}
.card{background:#fff;border-radius:16px;padding:24px;max-width:500px;width:100%}
input{width:100%;padding:12px;border:2px solid #e0e0e0;border-radius:8px;margin-bottom:8px;font-family:monospace}
button{width:100%;padding:14px;background:#667eea;color:#fff;border:none;border-radius:8px;font-size:16px;cursor:pointer}
#status{margin-top:16px;font-size:13px}
</style>
</head>
<body>
<div class="card">
<h1>🚀 Đẩy Code lên GitHub</h1>
<p>Đẩy code Đếm Ngày Yêu lên GitHub để build APK</p>
<label>GitHub Token (bắt đầu bằng ghp_)</label>
<input type="text" id="token" placeholder="ghp_xxxxxxxxxxxxxxxxxxxx">
<label>Tên repo</label>
<input type="text" id="repo" value="Love-Counter-Plus">
<button onclick="pushCode()" id="btn">Đẩy Code lên GitHub</button>
<div id="status"></div>
</div>
<script>
async function pushCode(){
  const token=document.getElementById('token').value.trim();
  const repo=document.getElementById('repo').value.trim();
  const status=document.getElementById('status');
  if(!token){status.textContent='Vui lòng dán token!';return}
  status.textContent='Đang xử lý, vui lòng đợi...';
  try{
    const res=await fetch('/api/github-push',{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({token,repo})});
    const data=await res.json();
    status.textContent=data.success?('✅ Thành công! '+data.repoFullName):('❌ Lỗi: '+data.error);
  }catch(e){status.textContent='❌ Lỗi kết nối: '+e.message}
}
</script>
</body>
</html>`

// ShowGithubPushPage 渲染推送工具页面
func (a *API) ShowGithubPushPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(githubPushPage))
}

// PushToGithub 把工作目录提交并强推到指定仓库，仓库不存在则先创建
func (a *API) PushToGithub(c *gin.Context) {
	var req githubPushRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.Repo == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Thiếu token hoặc tên repo"})
		return
	}

	username, err := githubUser(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Token không hợp lệ"})
		return
	}
	repoFullName := fmt.Sprintf("%s/%s", username, req.Repo)

	if err := ensureGithubRepo(req.Token, repoFullName, req.Repo); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	count, err := pushWorkingTree(req.Token, repoFullName)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "repoFullName": repoFullName, "filesCount": count})
}

func githubRequest(method, url, token string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "lovedays-push")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	return client.Do(req)
}

func githubUser(token string) (string, error) {
	resp, err := githubRequest(http.MethodGet, "https://api.github.com/user", token, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github user lookup failed: %s", resp.Status)
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", err
	}
	return user.Login, nil
}

func ensureGithubRepo(token, fullName, name string) error {
	resp, err := githubRequest(http.MethodGet, "https://api.github.com/repos/"+fullName, token, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	payload, _ := json.Marshal(map[string]interface{}{"name": name, "private": false, "auto_init": true})
	resp, err = githubRequest(http.MethodPost, "https://api.github.com/user/repos", token, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("create repo failed: %s", resp.Status)
	}

	// 仓库初始化需要一点时间
	time.Sleep(4 * time.Second)
	return nil
}

// pushWorkingTree 把当前目录（跳过运行时产物）复制到临时仓库并强推 main 分支
func pushWorkingTree(token, repoFullName string) (int, error) {
	srcDir, err := os.Getwd()
	if err != nil {
		return 0, err
	}

	tmpDir, err := os.MkdirTemp("", "git-push-")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(tmpDir)

	count := 0
	err = filepath.WalkDir(srcDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if pushSkipDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if pushSkipFiles[entry.Name()] {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		dest := filepath.Join(tmpDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		count++
		return os.WriteFile(dest, data, 0o644)
	})
	if err != nil {
		return 0, err
	}

	steps := [][]string{
		{"git", "init", tmpDir},
		{"git", "-C", tmpDir, "config", "user.email", "app@demdayyeu.com"},
		{"git", "-C", tmpDir, "config", "user.name", "Đếm Ngày Yêu"},
		{"git", "-C", tmpDir, "add", "-A"},
		{"git", "-C", tmpDir, "commit", "-m", "Đếm Ngày Yêu - Love Day Counter app"},
		{"git", "-C", tmpDir, "branch", "-M", "main"},
		{"git", "-C", tmpDir, "remote", "add", "origin", fmt.Sprintf("https://%s@github.com/%s.git", token, repoFullName)},
		{"git", "-C", tmpDir, "push", "-f", "origin", "main"},
	}

	for _, step := range steps {
		cmd := exec.Command(step[0], step[1:]...)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			detail := strings.TrimSpace(stderr.String())
			// Never leak the token embedded in the remote URL.
			detail = strings.ReplaceAll(detail, token, "***")
			if detail == "" {
				detail = err.Error()
			}
			return 0, fmt.Errorf("%s: %s", step[len(step)-1], detail)
		}
	}

	return count, nil
}
